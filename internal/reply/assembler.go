package reply

import (
	"context"
	"log"

	"mustard-bot/internal/catalog"
	"mustard-bot/internal/router"
	"mustard-bot/internal/store"
)

// maxCarouselCards is the LINE carousel bubble limit.
const maxCarouselCards = 12

// Assembler maps one routed action to its outbound payloads, invoking
// the content retriever where the action needs storefront data.
// Retrieval failures never surface as errors to the user; they collapse
// into the fixed "not found" templates.
type Assembler struct {
	retriever store.Retriever
}

func New(retriever store.Retriever) *Assembler {
	return &Assembler{retriever: retriever}
}

func (a *Assembler) Assemble(ctx context.Context, act router.Action) []Payload {
	switch act.Kind {
	case router.KindMainMenu:
		return []Payload{textPayload(catalog.MainMenuPrompt, catalog.MainMenuOptions)}

	case router.KindCategoryProducts:
		return a.products(ctx, act.Term)

	case router.KindFixedText:
		return []Payload{textPayload(act.Text, catalog.MainMenuOptions)}

	case router.KindBestSellers:
		return a.bestSellers(ctx)

	case router.KindGreeting:
		return []Payload{
			textPayload(act.Text, nil),
			textPayload(catalog.GreetingGuidance, catalog.MainMenuOptions),
		}

	case router.KindSubMenu:
		menu, ok := catalog.SubMenu(act.Label)
		if !ok {
			return []Payload{textPayload(catalog.MainMenuPrompt, catalog.MainMenuOptions)}
		}
		return []Payload{textPayload(menu.Prompt, menu.Options)}

	case router.KindFaqAnswer:
		return a.faqAnswer(ctx, act.FaqIndex)
	}
	return []Payload{textPayload(catalog.MainMenuPrompt, catalog.MainMenuOptions)}
}

func (a *Assembler) products(ctx context.Context, term string) []Payload {
	products, err := a.retriever.SearchProducts(ctx, term)
	if err != nil {
		log.Printf("product search %q failed: %v", term, err)
	}
	if len(products) == 0 {
		return []Payload{textPayload(catalog.SearchNotFound, catalog.MainMenuOptions)}
	}
	return []Payload{
		carousel(catalog.ShowingProductsFor(term), products),
		textPayload(catalog.ProductsGuidance, catalog.MainMenuOptions),
	}
}

func (a *Assembler) bestSellers(ctx context.Context) []Payload {
	products, err := a.retriever.ListBestSellers(ctx, store.BestSellerLimit)
	if err != nil {
		log.Printf("best-seller listing failed: %v", err)
	}
	if len(products) == 0 {
		return []Payload{textPayload(catalog.BestSellersNotFound, catalog.MainMenuOptions)}
	}
	return []Payload{
		carousel(catalog.BestSellerAltText, products),
		textPayload(catalog.BestSellerCaption, catalog.MainMenuOptions),
	}
}

func (a *Assembler) faqAnswer(ctx context.Context, index string) []Payload {
	faqs, err := a.retriever.FaqAnswers(ctx)
	if err != nil {
		log.Printf("faq retrieval failed: %v", err)
	}
	answer, ok := faqs[index]
	if !ok {
		answer = catalog.FaqAnswerNotFound
	}
	return []Payload{
		textPayload(answer, nil),
		textPayload(catalog.FaqListText, catalog.FaqMenuOptions),
	}
}

func carousel(altText string, products []store.Product) Payload {
	if len(products) > maxCarouselCards {
		products = products[:maxCarouselCards]
	}
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{
			Title:    p.Name,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			PageURL:  p.PageURL,
		}
	}
	return Payload{Kind: KindCarousel, AltText: altText, Cards: cards}
}
