package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hs21digital/backend/internal/model"
	"github.com/hs21digital/backend/internal/repository"
)

// cannedResponse pairs a keyword group with its category and reply.
// Groups are checked in order; the first match wins.
type cannedResponse struct {
	keywords []string
	category string
	reply    string
}

var cannedResponses = []cannedResponse{
	{
		keywords: []string{"website", "web"},
		category: model.CategoryService,
		reply:    "Great! We specialize in building stunning, responsive websites. Would you like to discuss your project requirements? Feel free to share details or contact us at hello@hs21digital.com",
	},
	{
		keywords: []string{"marketing", "seo"},
		category: model.CategoryService,
		reply:    "Our digital marketing services include SEO, social media management, and PPC campaigns. We can help increase your online visibility and drive real growth. What specific marketing goals do you have?",
	},
	{
		keywords: []string{"price", "cost", "pricing"},
		category: model.CategoryPricing,
		reply:    "Our pricing is tailored for the Indian market, starting from ₹15,000 for websites and ₹8,000 for branding. Let's discuss your specific needs! Email us at hello@hs21digital.com for a custom quote.",
	},
	{
		keywords: []string{"hello", "hi"},
		category: model.CategoryGreeting,
		reply:    "Hello! Thanks for reaching out. How can HS21 Digital help bring your vision to life today?",
	},
	{
		keywords: []string{"thank"},
		category: model.CategoryGeneral,
		reply:    "You're welcome! If you have any other questions, feel free to ask. We're here to help!",
	},
}

const fallbackReply = "Thanks for your message! I'd love to help you further. For detailed information, please email us at hello@hs21digital.com or give us a call at +91 98765 43210. Our team will get back to you shortly!"

// Classify matches the lowercased message against the ordered keyword groups
// and returns the category and canned reply. Unmatched messages fall through
// to the general contact reply.
func Classify(message string) (category, reply string) {
	lower := strings.ToLower(message)
	for _, c := range cannedResponses {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.category, c.reply
			}
		}
	}
	return model.CategoryGeneral, fallbackReply
}

// chatbotServiceImpl is the production implementation of ChatbotService.
type chatbotServiceImpl struct {
	repo repository.ChatLogRepository
}

// NewChatbotService creates a ChatbotService that logs exchanges to the
// given repository.
func NewChatbotService(repo repository.ChatLogRepository) ChatbotService {
	return &chatbotServiceImpl{repo: repo}
}

// Respond classifies the message and returns the canned reply. When a
// session identifier is supplied the exchange is appended to the chat log;
// a failed append is logged and swallowed so the caller's reply is never
// affected by store trouble.
func (s *chatbotServiceImpl) Respond(ctx context.Context, message, sessionID, ip string) *Reply {
	category, text := Classify(message)

	if sessionID != "" {
		entry := &model.ChatLogEntry{
			SessionID:   sessionID,
			UserMessage: message,
			BotResponse: text,
			Category:    category,
			IPAddress:   ip,
			CreatedAt:   time.Now().UTC(),
		}
		logCtx, cancel := context.WithTimeout(ctx, persistTimeout)
		defer cancel()
		if err := s.repo.Save(logCtx, entry); err != nil {
			slog.Warn("chat log append failed", "error", err, "session_id", sessionID)
		}
	}

	return &Reply{Response: text, Category: category}
}
