package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
)

func TestChatRelaysReply(t *testing.T) {
	svc := ChatService{Backend: &stubBackend{chatReply: "The 06:10 Shatabdi is cheapest."}}
	reply, err := svc.Reply(context.Background(), "cheapest train to Agra?")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "The 06:10 Shatabdi is cheapest." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestChatEmptyMessageBlocked(t *testing.T) {
	svc := ChatService{Backend: &stubBackend{}}
	if _, err := svc.Reply(context.Background(), "   "); !domain.IsValidation(err) {
		t.Errorf("blank message should be a validation error, got %v", err)
	}
}

func TestChatFailureYieldsFallbackReply(t *testing.T) {
	svc := ChatService{Backend: &stubBackend{chatErr: errors.New("dial tcp: refused")}}
	reply, err := svc.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("transport failure must not error the widget: %v", err)
	}
	if reply != FallbackReply {
		t.Errorf("expected fallback reply, got %q", reply)
	}
}
