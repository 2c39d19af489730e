// Package line is the LINE webhook transport: it validates and parses
// inbound events, hands message text to the bot and delivers the
// assembled reply. Per-event failures are logged and swallowed so the
// platform always gets a 200 and does not retry-storm the handler.
package line

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"mustard-bot/internal/bot"
)

// replySender delivers one reply to the platform.
type replySender interface {
	Reply(replyToken string, msgs []messaging_api.MessageInterface) error
}

type apiSender struct {
	api *messaging_api.MessagingApiAPI
}

func (s apiSender) Reply(replyToken string, msgs []messaging_api.MessageInterface) error {
	_, err := s.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   msgs,
	})
	return err
}

type Server struct {
	bot           *bot.Bot
	sender        replySender
	channelSecret string
	srv           *http.Server
}

func New(channelSecret, channelToken string, b *bot.Bot) (*Server, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, err
	}
	return &Server{bot: b, sender: apiSender{api: api}, channelSecret: channelSecret}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCallback)
	return mux
}

func (s *Server) Start(addr string) error {
	s.srv = &http.Server{Addr: addr, Handler: s.Handler()}
	log.Printf("webhook server listening on %s", addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	cb, err := webhook.ParseRequest(s.channelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		log.Printf("failed to parse webhook request: %v", err)
		return
	}
	for _, event := range cb.Events {
		if me, ok := event.(webhook.MessageEvent); ok {
			s.handleMessageEvent(r.Context(), me)
		}
	}
	w.WriteHeader(http.StatusOK)
}

// handleMessageEvent processes one text message event end to end. A
// malformed event (missing reply token, user id or text) is skipped
// without recording anything.
func (s *Server) handleMessageEvent(ctx context.Context, event webhook.MessageEvent) {
	text, ok := messageText(event)
	if !ok {
		return
	}
	userID := sourceUserID(event.Source)
	if event.ReplyToken == "" || userID == "" || text == "" {
		log.Printf("skipping malformed event (token=%q user=%q)", event.ReplyToken, userID)
		return
	}

	payloads := s.bot.HandleText(ctx, userID, text)
	msgs, err := toMessages(payloads)
	if err != nil {
		log.Printf("failed to build reply messages: %v", err)
		return
	}
	if err := s.sender.Reply(event.ReplyToken, msgs); err != nil {
		log.Printf("failed to deliver reply to %s: %v", userID, err)
		return
	}
	s.bot.Record(userID, text, payloads)
}

func messageText(event webhook.MessageEvent) (string, bool) {
	tm, ok := event.Message.(webhook.TextMessageContent)
	if !ok {
		return "", false
	}
	return tm.Text, true
}

func sourceUserID(source webhook.SourceInterface) string {
	switch src := source.(type) {
	case webhook.UserSource:
		return src.UserId
	case webhook.GroupSource:
		return src.UserId
	case webhook.RoomSource:
		return src.UserId
	}
	return ""
}
