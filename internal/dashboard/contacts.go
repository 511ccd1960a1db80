package dashboard

import (
	"context"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

// ContactLimit caps the admin contact listing.
const ContactLimit = 100

// ContactSource lists contact submissions.
type ContactSource interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}

// ContactView is the render model of the contact list.
type ContactView struct {
	Items  []*model.ContactSubmission
	Total  int
	Loaded bool
	Stale  bool
}

// ContactBoard is the admin list of contact submissions, newest first.
type ContactBoard struct {
	list *Listing[*model.ContactSubmission]
}

func NewContactBoard(src ContactSource, notifier Notifier) *ContactBoard {
	q := service.RecentContactsQuery(ContactLimit)
	fetch := func(ctx context.Context) ([]*model.ContactSubmission, error) {
		return src.List(ctx, q)
	}
	return &ContactBoard{list: NewListing("contact submissions", fetch, notifier)}
}

func (b *ContactBoard) Load(ctx context.Context) { b.list.Load(ctx) }

func (b *ContactBoard) Close() { b.list.Close() }

func (b *ContactBoard) View() ContactView {
	snap := b.list.Snapshot()
	return ContactView{
		Items:  snap.Items,
		Total:  len(snap.Items),
		Loaded: snap.Loaded,
		Stale:  snap.Stale,
	}
}
