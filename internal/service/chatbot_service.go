package service

import "context"

// Reply is a canned chatbot answer plus the category the message matched.
type Reply struct {
	Response string
	Category string
}

// ChatbotService answers free-text messages with canned replies. It is a
// terminal, stateless classifier: the session identifier is used only for
// log correlation, never for response generation, and Respond never fails.
type ChatbotService interface {
	Respond(ctx context.Context, message, sessionID, ip string) *Reply
}
