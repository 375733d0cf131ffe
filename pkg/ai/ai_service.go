package ai

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/utils"
	"Savora-Admin/pkg/user"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"

	defaultChatModel    = "gpt-4-turbo-preview"
	analysisModel       = "gpt-3.5-turbo"
	defaultSystemPrompt = "You are a helpful assistant."

	analysisSystemPrompt = "You are a professional chef. Suggest 2 simple recipes based on the available ingredients provided. Include a short title and 3-4 steps for each. Return as JSON: { \"suggestion\": \"...text...\", \"suggestions\": [{ \"title\": \"\", \"description\": \"\", \"matchPercent\": 100 }] }"
)

type (
	AIService interface {
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
		AnalyzeInventory(ctx context.Context, req domain.AnalyzeInventoryRequest, userID string) (domain.AnalyzeInventoryResponse, error)
	}

	aiService struct {
		userRepository user.UserRepository
		httpClient     *http.Client
	}

	openAIMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	openAIRequest struct {
		Model          string          `json:"model"`
		Messages       []openAIMessage `json:"messages"`
		Temperature    float64         `json:"temperature,omitempty"`
		MaxTokens      int             `json:"max_tokens,omitempty"`
		ResponseFormat *responseFormat `json:"response_format,omitempty"`
	}

	responseFormat struct {
		Type string `json:"type"`
	}

	openAIResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage domain.ChatUsage `json:"usage"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
)

func NewAIService(userRepository user.UserRepository) AIService {
	return &aiService{
		userRepository: userRepository,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

// resolveAPIKey prefers the caller's stored key and falls back to the
// server-wide default. Neither present means the request never leaves
// the process.
func (s *aiService) resolveAPIKey(ctx context.Context, userID string) (string, error) {
	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err == nil && usr.OpenAIKey != "" {
		return usr.OpenAIKey, nil
	}

	if key := utils.GetConfig("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return "", domain.ErrMissingOpenAIKey
}

func (s *aiService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = defaultChatModel
	}

	messages := make([]openAIMessage, 0, len(req.Messages)+1)
	messages = append(messages, openAIMessage{Role: "system", Content: systemPrompt})
	for _, m := range req.Messages {
		messages = append(messages, openAIMessage{Role: m.Role, Content: m.Content})
	}

	result, err := s.completeChat(ctx, apiKey, openAIRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{
		Content: result.Choices[0].Message.Content,
		Usage:   result.Usage,
	}, nil
}

func (s *aiService) AnalyzeInventory(ctx context.Context, req domain.AnalyzeInventoryRequest, userID string) (domain.AnalyzeInventoryResponse, error) {
	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.AnalyzeInventoryResponse{}, err
	}

	ingredients := "Nothing"
	if len(req.Items) > 0 {
		ingredients = strings.Join(req.Items, ", ")
	}

	result, err := s.completeChat(ctx, apiKey, openAIRequest{
		Model: analysisModel,
		Messages: []openAIMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("I have the following ingredients: %s. What can I cook?", ingredients)},
		},
		MaxTokens:      500,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.AnalyzeInventoryResponse{}, err
	}

	var parsed struct {
		Suggestion  string                    `json:"suggestion"`
		Suggestions []domain.RecipeSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(extractJSON(result.Choices[0].Message.Content)), &parsed); err != nil {
		return domain.AnalyzeInventoryResponse{}, domain.ErrAIResponseInvalid
	}

	return domain.AnalyzeInventoryResponse{
		Success:     true,
		Suggestion:  parsed.Suggestion,
		Suggestions: parsed.Suggestions,
	}, nil
}

func (s *aiService) completeChat(ctx context.Context, apiKey string, payload openAIRequest) (*openAIResponse, error) {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOpenAIUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp openAIResponse
		if json.Unmarshal(bodyBytes, &errResp) == nil && errResp.Error != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrOpenAIUpstream, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrOpenAIUpstream, resp.Status)
	}

	var result openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOpenAIUpstream, err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrOpenAIUpstream)
	}

	return &result, nil
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON pulls the JSON object out of a model reply that may wrap it
// in markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}

	if matches := jsonObjectPattern.FindString(text); matches != "" {
		return matches
	}
	return strings.TrimSpace(text)
}
