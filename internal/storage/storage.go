package storage

import "time"

// Event is one recorded interaction: what the user sent and the
// primary text of the bot's reply. Events are append-only and never
// mutated after creation.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	BotReply    string    `json:"bot_reply"`
}

// Recorder abstracts persistence of interaction events.
// AppendInteraction must atomically append a single event and be safe
// for concurrent use; LoadInteractions returns events in append order.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
