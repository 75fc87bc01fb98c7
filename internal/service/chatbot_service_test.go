package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hs21digital/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockChatLogRepository
// ---------------------------------------------------------------------------

type mockChatLogRepository struct {
	saveFunc    func(ctx context.Context, entry *model.ChatLogEntry) error
	historyFunc func(ctx context.Context, sessionID string) ([]*model.ChatLogEntry, error)
	countFunc   func(ctx context.Context) ([]model.CategoryCount, error)
}

func (m *mockChatLogRepository) Save(ctx context.Context, entry *model.ChatLogEntry) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, entry)
	}
	return nil
}

func (m *mockChatLogRepository) SessionHistory(ctx context.Context, sessionID string) ([]*model.ChatLogEntry, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockChatLogRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	cases := []struct {
		message  string
		category string
	}{
		{"I need a website for my shop", model.CategoryService},
		{"do you do web apps?", model.CategoryService},
		{"Tell me about your MARKETING offer", model.CategoryService},
		{"can you help with seo?", model.CategoryService},
		{"What's your pricing?", model.CategoryPricing},
		{"how much does it cost", model.CategoryPricing},
		{"price list please", model.CategoryPricing},
		{"Hi there", model.CategoryGreeting},
		{"hello!", model.CategoryGreeting},
		{"thank you so much", model.CategoryGeneral},
		{"asdf", model.CategoryGeneral},
		{"", model.CategoryGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			category, reply := Classify(tc.message)
			if category != tc.category {
				t.Errorf("Classify(%q) category = %q, want %q", tc.message, category, tc.category)
			}
			if reply == "" {
				t.Error("expected a non-empty reply")
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// "website" (group 1) must beat "price" (group 3) regardless of word order.
	category, _ := Classify("what is the price of a website")
	if category != model.CategoryService {
		t.Errorf("expected first group to win, got %q", category)
	}
}

func TestClassify_PricingReplyMentionsPrice(t *testing.T) {
	_, reply := Classify("What's your pricing?")
	if !strings.Contains(reply, "₹15,000") {
		t.Errorf("expected a price anchor in the pricing reply, got %q", reply)
	}
}

// ---------------------------------------------------------------------------
// Respond
// ---------------------------------------------------------------------------

func TestChatbotService_Respond_LogsExchange(t *testing.T) {
	var saved *model.ChatLogEntry
	repo := &mockChatLogRepository{
		saveFunc: func(ctx context.Context, entry *model.ChatLogEntry) error {
			saved = entry
			return nil
		},
	}
	svc := NewChatbotService(repo)

	reply := svc.Respond(context.Background(), "What's your pricing?", "sess-1", "203.0.113.4")
	if reply == nil {
		t.Fatal("expected a reply")
	}
	if reply.Category != model.CategoryPricing {
		t.Errorf("expected category=pricing, got %q", reply.Category)
	}
	if saved == nil {
		t.Fatal("expected the exchange to be logged")
	}
	if saved.SessionID != "sess-1" {
		t.Errorf("expected session id logged, got %q", saved.SessionID)
	}
	if saved.UserMessage != "What's your pricing?" {
		t.Errorf("expected raw user message logged, got %q", saved.UserMessage)
	}
	if saved.BotResponse != reply.Response {
		t.Error("expected the chosen reply logged")
	}
	if saved.Category != model.CategoryPricing {
		t.Errorf("expected matched category logged, got %q", saved.Category)
	}
	if saved.IPAddress != "203.0.113.4" {
		t.Errorf("expected request ip logged, got %q", saved.IPAddress)
	}
}

func TestChatbotService_Respond_NoSession_NoLog(t *testing.T) {
	repo := &mockChatLogRepository{
		saveFunc: func(ctx context.Context, entry *model.ChatLogEntry) error {
			t.Error("expected no log append without a session id")
			return nil
		},
	}
	svc := NewChatbotService(repo)

	if reply := svc.Respond(context.Background(), "hello", "", "1.2.3.4"); reply == nil {
		t.Fatal("expected a reply")
	}
}

func TestChatbotService_Respond_LogFailureSwallowed(t *testing.T) {
	repo := &mockChatLogRepository{
		saveFunc: func(ctx context.Context, entry *model.ChatLogEntry) error {
			return errors.New("store not connected")
		},
	}
	svc := NewChatbotService(repo)

	reply := svc.Respond(context.Background(), "Hi there", "sess-2", "")
	if reply == nil {
		t.Fatal("expected a reply despite log failure")
	}
	if reply.Category != model.CategoryGreeting {
		t.Errorf("expected category=greeting, got %q", reply.Category)
	}
}
