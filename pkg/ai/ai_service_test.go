package ai

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUsers(context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) CheckEmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestChat_MissingKey(t *testing.T) {
	repo := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewAIService(repo)

	_, err := service.Chat(context.Background(), domain.ChatRequest{
		Messages: []domain.ChatMessage{{Role: "user", Content: "hello"}},
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrMissingOpenAIKey)
}

func TestAnalyzeInventory_MissingKey(t *testing.T) {
	repo := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewAIService(repo)

	_, err := service.AnalyzeInventory(context.Background(), domain.AnalyzeInventoryRequest{
		Items: []string{"Eggs", "Cheese"},
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrMissingOpenAIKey)
}

func TestExtractJSON(t *testing.T) {
	payload := `{"suggestion":"make pasta","suggestions":[{"title":"Pasta","description":"boil it","matchPercent":90}]}`

	cases := []string{
		payload,
		"```json\n" + payload + "\n```",
		"```\n" + payload + "\n```",
		"Here is what I found:\n" + payload + "\nEnjoy!",
	}
	for _, raw := range cases {
		var parsed struct {
			Suggestion  string                    `json:"suggestion"`
			Suggestions []domain.RecipeSuggestion `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal([]byte(extractJSON(raw)), &parsed), "input: %q", raw)
		require.Equal(t, "make pasta", parsed.Suggestion)
		require.Len(t, parsed.Suggestions, 1)
		require.Equal(t, 90, parsed.Suggestions[0].MatchPercent)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	out := extractJSON("sorry, I cannot help with that")
	var parsed map[string]any
	require.Error(t, json.Unmarshal([]byte(out), &parsed))
}
