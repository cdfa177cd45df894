package domain

import "time"

// Role is the author of a chat message
type Role string

// enum of message roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a conversation with the assistant
type Message struct {
	Role      Role              `json:"role"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Events    []EventSuggestion `json:"events,omitempty"`
}

// PriceType tells free events from paid ones
type PriceType string

// enum of price types
const (
	PriceFree PriceType = "free"
	PricePaid PriceType = "paid"
)

// Price of a suggested event
type Price struct {
	Type   PriceType `json:"type"`
	Amount *float64  `json:"amount,omitempty"`
}

// EventSuggestion is an event the assistant recommends, embedded in its reply
type EventSuggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Provider string `json:"provider"`
	ImageURL string `json:"imageUrl,omitempty"`
	Price    Price  `json:"price"`
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message      string    `json:"message"`
	UserName     string    `json:"userName"`
	ClerkID      string    `json:"clerkId"`
	ChatHistory  []Message `json:"chatHistory"`
	UserLanguage string    `json:"userLanguage"`
}

// ChatResponse is the reply of POST /chat
type ChatResponse struct {
	Answer string            `json:"answer"`
	Events []EventSuggestion `json:"events,omitempty"`
}
