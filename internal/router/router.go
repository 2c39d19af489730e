// Package router classifies inbound text into exactly one response
// action. Rules are evaluated in a fixed order and the first match
// wins; the free-text product search at the end always produces an
// action, so routing never fails.
package router

import (
	"context"
	"errors"
	"log"

	"mustard-bot/internal/catalog"
	"mustard-bot/internal/greeting"
)

// Kind enumerates the response strategies.
type Kind int

const (
	KindMainMenu Kind = iota
	KindCategoryProducts
	KindFixedText
	KindBestSellers
	KindGreeting
	KindSubMenu
	KindFaqAnswer
)

// Action is the single terminal outcome of routing one message.
type Action struct {
	Kind Kind

	// Term is the product search term (canonical category for a
	// translated token, raw text for the free-text fallback).
	Term string
	// Text is the reply body for KindFixedText and KindGreeting.
	Text string
	// Label is the top-level label for KindSubMenu.
	Label string
	// FaqIndex is "1".."4" for KindFaqAnswer.
	FaqIndex string
}

type Router struct {
	greetings *greeting.Matcher
}

func New(greetings *greeting.Matcher) *Router {
	return &Router{greetings: greetings}
}

// Route applies the ordered rule set to text. An unavailable embedding
// backend only disables the greeting rule; evaluation falls through to
// the later rules.
func (r *Router) Route(ctx context.Context, text string) Action {
	if catalog.IsMenuTrigger(text) {
		return Action{Kind: KindMainMenu}
	}
	if category, ok := catalog.Translate(text); ok {
		return Action{Kind: KindCategoryProducts, Term: category}
	}
	if text == catalog.SaleToken {
		return Action{Kind: KindFixedText, Text: catalog.NoSaleMessage}
	}
	if catalog.IsRecommendTrigger(text) {
		return Action{Kind: KindBestSellers}
	}
	if entry, ok, err := r.greetings.Match(ctx, text); err != nil {
		if errors.Is(err, greeting.ErrUnavailable) {
			log.Printf("greeting match skipped: %v", err)
		} else {
			log.Printf("greeting match failed: %v", err)
		}
	} else if ok {
		return Action{Kind: KindGreeting, Text: entry.Reply}
	}
	if _, ok := catalog.SubMenu(text); ok {
		return Action{Kind: KindSubMenu, Label: text}
	}
	if catalog.IsFaqIndex(text) {
		return Action{Kind: KindFaqAnswer, FaqIndex: text}
	}
	return Action{Kind: KindCategoryProducts, Term: text}
}
