// Package reply builds transport-neutral outbound payloads from routed
// actions. The LINE transport converts payloads to SDK messages.
package reply

import "mustard-bot/internal/catalog"

type Kind int

const (
	KindText Kind = iota
	KindCarousel
)

// Card is one product bubble in a carousel.
type Card struct {
	Title    string
	Price    string
	ImageURL string
	PageURL  string
}

// Payload is a single outbound message: either text (optionally with a
// quick-reply option set) or a carousel of product cards.
type Payload struct {
	Kind    Kind
	Text    string
	AltText string
	Quick   []catalog.Option
	Cards   []Card
}

// Text payloads are the common case.
func textPayload(text string, quick []catalog.Option) Payload {
	return Payload{Kind: KindText, Text: text, Quick: quick}
}

// Summary is the primary text of an assembled reply, used as the
// recorded bot response: the first payload's text, or its alt text for
// a leading carousel.
func Summary(payloads []Payload) string {
	if len(payloads) == 0 {
		return ""
	}
	if payloads[0].Kind == KindCarousel {
		return payloads[0].AltText
	}
	return payloads[0].Text
}
