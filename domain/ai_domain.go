package domain

import (
	"errors"
)

var (
	MessageSuccessChat             = "chat completion retrieved successfully"
	MessageSuccessAnalyzeInventory = "inventory analyzed successfully"

	MessageFailedChat             = "failed to retrieve chat completion"
	MessageFailedAnalyzeInventory = "AI service is currently unavailable"
	MessageMissingOpenAIKey       = "OpenAI API key not found, please add it in settings"

	ErrMissingOpenAIKey  = errors.New("openai api key not configured")
	ErrOpenAIUpstream    = errors.New("openai request failed")
	ErrAIResponseInvalid = errors.New("ai response is not valid JSON")
)

type (
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=system user assistant"`
		Content string `json:"content" validate:"required"`
	}

	ChatRequest struct {
		Messages     []ChatMessage `json:"messages" validate:"required,min=1,dive"`
		SystemPrompt string        `json:"system_prompt" validate:"omitempty"`
		Temperature  float64       `json:"temperature" validate:"omitempty,min=0,max=2"`
	}

	ChatUsage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	}

	ChatResponse struct {
		Content string    `json:"content"`
		Usage   ChatUsage `json:"usage"`
	}

	AnalyzeInventoryRequest struct {
		Items []string `json:"items" validate:"omitempty"`
	}

	RecipeSuggestion struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		MatchPercent int    `json:"matchPercent"`
	}

	AnalyzeInventoryResponse struct {
		Success     bool               `json:"success"`
		Suggestion  string             `json:"suggestion"`
		Suggestions []RecipeSuggestion `json:"suggestions"`
	}
)
