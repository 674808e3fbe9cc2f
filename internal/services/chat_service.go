package services

import (
	"context"
	"log"
	"strings"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
)

// FallbackReply is what the widget appends when the backend cannot be
// reached; the transcript always gets a bot line.
const FallbackReply = "Connection issue — please try again."

type ChatService struct {
	Backend Backend
}

// Reply relays the raw message to the backend chatbot. A transport
// failure is not an error for the caller: the widget still needs a
// message to append, so the fallback reply comes back instead.
func (s ChatService) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.ValidationError{Field: "message", Msg: "must not be empty"}
	}

	metrics.IncChatMessage()

	reply, err := s.Backend.Chat(ctx, message)
	if err != nil {
		metrics.IncUpstreamFailure("chat")
		log.Printf("warning: chat relay failed: %v", err)
		return FallbackReply, nil
	}
	return reply, nil
}
