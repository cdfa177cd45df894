// Package assistant answers chat messages with suggestions of upcoming events using an LLM.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/blizbi/blizbi/pkg/config"
	"github.com/blizbi/blizbi/pkg/domain"
)

//go:generate moq -out mocks/events.go -pkg mocks -skip-ensure -fmt goimports . Events

// ErrDisabled is returned when no LLM is configured
var ErrDisabled = errors.New("assistant is not configured")

// Events finds candidate events for a message
type Events interface {
	Search(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
}

// Assistant uses LLM to answer chat messages
type Assistant struct {
	client    *openai.Client
	config    config.AssistantConfig
	events    Events
	systemMsg string
	policy    *bluemonday.Policy
	now       func() time.Time
}

// default system prompt for the event assistant
const defaultSystemPrompt = `You are Blizbi, a friendly assistant helping people discover local events.
Answer the user's message in a short, warm and helpful way. When the user looks for something to do,
recommend events from the provided list only, never invent events, dates or prices.
If nothing in the list fits, say so and suggest how the user could refine the question.

Respond with a JSON object:
{"answer": "<your reply in plain text>", "event_ids": ["<id of a recommended event>", ...]}
Use an empty event_ids array when you recommend nothing.`

// New creates an assistant. Without endpoint and api key Answer returns ErrDisabled.
func New(cfg config.AssistantConfig, events Events) *Assistant {
	a := &Assistant{
		config:    cfg,
		events:    events,
		systemMsg: cfg.SystemPrompt,
		policy:    bluemonday.StrictPolicy(),
		now:       time.Now,
	}
	if a.systemMsg == "" {
		a.systemMsg = defaultSystemPrompt
	}
	if cfg.Enabled() {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.Endpoint != "" {
			clientConfig.BaseURL = cfg.Endpoint
		}
		a.client = openai.NewClientWithConfig(clientConfig)
	}
	return a
}

// reply is the JSON object the LLM answers with
type reply struct {
	Answer   string   `json:"answer"`
	EventIDs []string `json:"event_ids"`
}

// Answer replies to the chat message, suggesting events picked from upcoming ones
func (a *Assistant) Answer(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if a.client == nil {
		return nil, ErrDisabled
	}
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	candidates := a.candidates(ctx, req.Message)
	prompt := a.buildPrompt(req, candidates)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       a.config.Model,
			Temperature: float32(a.config.Temperature),
			MaxTokens:   a.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}
		if a.config.UseJSONMode {
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
		}

		resp, err := a.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("no response from llm")
		}

		r, err := parseReply(resp.Choices[0].Message.Content)
		if err == nil {
			return a.toResponse(r, candidates), nil
		}
		lastErr = err
		lgr.Printf("[DEBUG] invalid llm reply, attempt %d: %v", attempt+1, err)
	}

	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// candidates returns upcoming events matching the message, or the next upcoming ones if nothing matches
func (a *Assistant) candidates(ctx context.Context, message string) []domain.Event {
	today := a.now().Format(time.DateOnly)
	filter := domain.EventFilter{Query: message, From: today, Limit: a.config.MaxEvents}
	res, err := a.events.Search(ctx, filter)
	if err != nil {
		lgr.Printf("[WARN] failed to search events for chat: %v", err)
	}
	if len(res) > 0 || len(filter.Terms()) == 0 {
		return res
	}

	filter.Query = ""
	res, err = a.events.Search(ctx, filter)
	if err != nil {
		lgr.Printf("[WARN] failed to list upcoming events for chat: %v", err)
	}
	return res
}

// buildPrompt creates the prompt with language, history, candidate events and the message
func (a *Assistant) buildPrompt(req domain.ChatRequest, candidates []domain.Event) string {
	var sb strings.Builder

	lang := req.UserLanguage
	if lang == "" {
		lang = "Norwegian"
	}
	sb.WriteString(fmt.Sprintf("Answer in %s.\n", lang))
	if req.UserName != "" {
		sb.WriteString(fmt.Sprintf("The user's name is %s.\n", req.UserName))
	}
	sb.WriteString(fmt.Sprintf("Today is %s.\n\n", a.now().Format("Monday, 2006-01-02")))

	history := req.ChatHistory
	if n := a.config.HistorySize; n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, m := range history {
			sb.WriteString(fmt.Sprintf("%s: %s\n", m.Role, m.Content))
		}
		sb.WriteString("\n")
	}

	if len(candidates) == 0 {
		sb.WriteString("There are no upcoming events available.\n\n")
	} else {
		sb.WriteString("Upcoming events:\n")
		for _, ev := range candidates {
			s := ev.Suggestion()
			sb.WriteString(fmt.Sprintf("- id: %s | %s | %s %s", s.ID, s.Title, s.Date, s.Time))
			if s.Location != "" {
				sb.WriteString(" | " + s.Location)
			}
			if s.Provider != "" {
				sb.WriteString(" | by " + s.Provider)
			}
			if s.Price.Type == domain.PricePaid && s.Price.Amount != nil {
				sb.WriteString(fmt.Sprintf(" | %.0f NOK", *s.Price.Amount))
			} else {
				sb.WriteString(" | free")
			}
			sb.WriteString("\n")
			if ev.Description != "" {
				desc := []rune(ev.Description)
				if len(desc) > 200 {
					desc = append(desc[:200], []rune("...")...)
				}
				sb.WriteString("  " + string(desc) + "\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User message: ")
	sb.WriteString(req.Message)
	return sb.String()
}

// parseReply finds the JSON object in the LLM reply
func parseReply(content string) (reply, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return reply{}, errors.New("no json object found in response")
	}
	var r reply
	if err := json.Unmarshal([]byte(content[start:end+1]), &r); err != nil {
		return reply{}, fmt.Errorf("failed to parse json response: %w", err)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return reply{}, errors.New("empty answer in response")
	}
	return r, nil
}

// toResponse sanitizes the answer and keeps suggestions of known candidates only
func (a *Assistant) toResponse(r reply, candidates []domain.Event) *domain.ChatResponse {
	byID := make(map[string]domain.Event, len(candidates))
	for _, ev := range candidates {
		byID[ev.ID] = ev
	}

	res := &domain.ChatResponse{Answer: strings.TrimSpace(html.UnescapeString(a.policy.Sanitize(r.Answer)))}
	seen := map[string]bool{}
	for _, id := range r.EventIDs {
		ev, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		res.Events = append(res.Events, ev.Suggestion())
		if len(res.Events) >= a.config.MaxSuggested && a.config.MaxSuggested > 0 {
			break
		}
	}
	return res
}
