package dashboard

import (
	"fmt"
	"html/template"
	"strconv"
	"time"
)

// Effect is the entrance animation applied when an element scrolls into view.
type Effect int

const (
	EffectNone Effect = iota
	EffectFade
	EffectFadeUp
	EffectSlideLeft
	EffectZoom
)

var effectNames = [...]string{
	EffectNone:      "none",
	EffectFade:      "fade",
	EffectFadeUp:    "fade-up",
	EffectSlideLeft: "slide-left",
	EffectZoom:      "zoom",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return effectNames[EffectNone]
	}
	return effectNames[e]
}

// Reveal configures a scroll-triggered entrance animation. The browser
// runtime reads it from data-reveal attributes.
type Reveal struct {
	Effect   Effect
	Duration time.Duration
	Delay    time.Duration
	// Stagger is added to Delay once per item index by At.
	Stagger time.Duration
	// Once plays the animation only the first time the element appears.
	Once bool
}

// DefaultReveal is fade-up over 600ms, no delay, 100ms stagger, played once.
func DefaultReveal() Reveal {
	return Reveal{
		Effect:   EffectFadeUp,
		Duration: 600 * time.Millisecond,
		Stagger:  100 * time.Millisecond,
		Once:     true,
	}
}

// At returns the configuration for the index-th item of a staggered group.
func (r Reveal) At(index int) Reveal {
	if index > 0 {
		r.Delay += time.Duration(index) * r.Stagger
	}
	return r
}

// Attrs renders the data attributes read by the animation runtime. EffectNone
// renders nothing.
func (r Reveal) Attrs() template.HTMLAttr {
	if r.Effect == EffectNone {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(
		`data-reveal="%s" data-reveal-duration="%d" data-reveal-delay="%d" data-reveal-once="%s"`,
		r.Effect, r.Duration.Milliseconds(), r.Delay.Milliseconds(), strconv.FormatBool(r.Once),
	))
}
