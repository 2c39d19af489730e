package line

import (
	"encoding/json"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"mustard-bot/internal/catalog"
	"mustard-bot/internal/reply"
)

// toMessages converts assembled payloads to LINE SDK messages.
func toMessages(payloads []reply.Payload) ([]messaging_api.MessageInterface, error) {
	msgs := make([]messaging_api.MessageInterface, 0, len(payloads))
	for _, p := range payloads {
		switch p.Kind {
		case reply.KindText:
			msgs = append(msgs, &messaging_api.TextMessage{
				Text:       p.Text,
				QuickReply: quickReply(p.Quick),
			})
		case reply.KindCarousel:
			flex, err := carouselMessage(p)
			if err != nil {
				return nil, err
			}
			msgs = append(msgs, flex)
		default:
			return nil, fmt.Errorf("unknown payload kind %d", p.Kind)
		}
	}
	return msgs, nil
}

func quickReply(options []catalog.Option) *messaging_api.QuickReply {
	if len(options) == 0 {
		return nil
	}
	items := make([]messaging_api.QuickReplyItem, len(options))
	for i, o := range options {
		items[i] = messaging_api.QuickReplyItem{
			Type: "action",
			Action: &messaging_api.MessageAction{
				Label: o.Label,
				Text:  o.Text,
			},
		}
	}
	return &messaging_api.QuickReply{Items: items}
}

// carouselMessage renders product cards as a flex carousel. The bubble
// layout is built as raw flex JSON and parsed through the SDK, the same
// shape the storefront bot always sent: hero image, bold title, grey
// price line, one link button.
func carouselMessage(p reply.Payload) (*messaging_api.FlexMessage, error) {
	bubbles := make([]map[string]any, len(p.Cards))
	for i, card := range p.Cards {
		bubbles[i] = map[string]any{
			"type": "bubble",
			"hero": map[string]any{
				"type":        "image",
				"url":         card.ImageURL,
				"size":        "full",
				"aspectRatio": "20:13",
				"aspectMode":  "cover",
			},
			"body": map[string]any{
				"type":   "box",
				"layout": "vertical",
				"contents": []map[string]any{
					{"type": "text", "text": card.Title, "weight": "bold", "size": "md", "wrap": true},
					{"type": "text", "text": "Price: " + card.Price, "size": "sm", "color": "#999999"},
				},
			},
			"footer": map[string]any{
				"type":    "box",
				"layout":  "vertical",
				"spacing": "sm",
				"contents": []map[string]any{
					{
						"type":   "button",
						"style":  "primary",
						"height": "sm",
						"color":  catalog.CardButtonColor,
						"action": map[string]any{
							"type":  "uri",
							"label": catalog.ViewProductLabel,
							"uri":   card.PageURL,
						},
					},
				},
				"flex": 0,
			},
		}
	}
	raw, err := json.Marshal(map[string]any{
		"type":     "carousel",
		"contents": bubbles,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal carousel: %w", err)
	}
	container, err := messaging_api.UnmarshalFlexContainer(raw)
	if err != nil {
		return nil, fmt.Errorf("build flex container: %w", err)
	}
	return &messaging_api.FlexMessage{
		AltText:  p.AltText,
		Contents: container,
	}, nil
}
