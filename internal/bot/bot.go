// Package bot ties routing, assembly and recording together for one
// inbound message.
package bot

import (
	"context"
	"log"
	"time"

	"mustard-bot/internal/reply"
	"mustard-bot/internal/router"
	"mustard-bot/internal/storage"
)

type Bot struct {
	router    *router.Router
	assembler *reply.Assembler
	recorder  storage.Recorder
	now       func() time.Time
}

func New(r *router.Router, a *reply.Assembler, rec storage.Recorder) *Bot {
	return &Bot{router: r, assembler: a, recorder: rec, now: time.Now}
}

// HandleText resolves one inbound message to its outbound payloads.
// It always returns at least one payload: the router's fallback rule
// cannot fail and retrieval failures collapse into the fixed
// "not found" templates.
func (b *Bot) HandleText(ctx context.Context, userID, text string) []reply.Payload {
	action := b.router.Route(ctx, text)
	payloads := b.assembler.Assemble(ctx, action)
	log.Printf("message from %s: %q -> %d payload(s)", userID, text, len(payloads))
	return payloads
}

// Record persists one interaction after the reply has been delivered.
// A failed write is logged, not surfaced; the reply already went out.
func (b *Bot) Record(userID, text string, payloads []reply.Payload) {
	if b.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:   b.now().UTC(),
		UserID:      userID,
		UserMessage: text,
		BotReply:    reply.Summary(payloads),
	}
	if err := b.recorder.AppendInteraction(ev); err != nil {
		log.Printf("failed to record interaction for %s: %v", userID, err)
	}
}
