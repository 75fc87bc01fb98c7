package model

import "time"

// Chat exchange categories assigned by keyword classification.
const (
	CategoryGreeting = "greeting"
	CategoryPricing  = "pricing"
	CategoryService  = "service"
	CategoryGeneral  = "general"
)

// ChatLogEntry records a single chatbot exchange for later analytics.
// Entries are append-only; nothing in the backend mutates or deletes them.
type ChatLogEntry struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Category    string    `json:"category"`
	UserEmail   string    `json:"userEmail,omitempty"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryCount is one row of the per-category exchange statistics.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
