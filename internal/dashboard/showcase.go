package dashboard

import (
	"context"
	"html/template"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

const (
	// FeaturedLimit is the size of the home page showcase section.
	FeaturedLimit = 3
	// ShowcaseLimit caps the full case-study page.
	ShowcaseLimit = 50
)

// CaseStudySource lists case studies.
type CaseStudySource interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error)
}

// CaseStudyCard is one rendered case study.
type CaseStudyCard struct {
	*model.CaseStudy
	Icon     model.Icon
	BodyHTML template.HTML
	Reveal   Reveal
}

// ShowcaseView is the render model of a showcase grid.
type ShowcaseView struct {
	Cards  []CaseStudyCard
	Loaded bool
	Stale  bool
}

// Showcase is a grid of case studies.
type Showcase struct {
	list   *Listing[*model.CaseStudy]
	reveal Reveal
}

// NewFeaturedShowcase lists the featured case studies for the home section.
func NewFeaturedShowcase(src CaseStudySource, notifier Notifier) *Showcase {
	return newShowcase(src, service.FeaturedCaseStudiesQuery(FeaturedLimit), notifier)
}

// NewShowcase lists every case study in display order.
func NewShowcase(src CaseStudySource, notifier Notifier) *Showcase {
	return newShowcase(src, service.CaseStudiesQuery(ShowcaseLimit), notifier)
}

func newShowcase(src CaseStudySource, q model.ListQuery, notifier Notifier) *Showcase {
	fetch := func(ctx context.Context) ([]*model.CaseStudy, error) {
		return src.List(ctx, q)
	}
	return &Showcase{
		list:   NewListing("case studies", fetch, notifier),
		reveal: DefaultReveal(),
	}
}

// WithReveal replaces the card animation.
func (s *Showcase) WithReveal(r Reveal) *Showcase {
	s.reveal = r
	return s
}

func (s *Showcase) Load(ctx context.Context) { s.list.Load(ctx) }

func (s *Showcase) Close() { s.list.Close() }

func (s *Showcase) View() ShowcaseView {
	snap := s.list.Snapshot()
	cards := make([]CaseStudyCard, len(snap.Items))
	for i, cs := range snap.Items {
		cards[i] = CaseStudyCard{
			CaseStudy: cs,
			Icon:      model.ParseIcon(cs.Icon),
			BodyHTML:  RenderMarkdown(cs.Body),
			Reveal:    s.reveal.At(i),
		}
	}
	return ShowcaseView{Cards: cards, Loaded: snap.Loaded, Stale: snap.Stale}
}
