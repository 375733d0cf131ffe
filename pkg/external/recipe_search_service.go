package external

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/utils"
	"Savora-Admin/pkg/user"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const spoonacularBase = "https://api.spoonacular.com/recipes"

type (
	RecipeSearchService interface {
		SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest, userID string) (domain.RecipeSearchResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (json.RawMessage, error)
	}

	recipeSearchService struct {
		userRepository user.UserRepository
		httpClient     *http.Client
	}
)

func NewRecipeSearchService(userRepository user.UserRepository) RecipeSearchService {
	return &recipeSearchService{
		userRepository: userRepository,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *recipeSearchService) resolveAPIKey(ctx context.Context, userID string) string {
	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err == nil && usr.SpoonacularKey != "" {
		return usr.SpoonacularKey
	}
	return utils.GetConfig("SPOONACULAR_API_KEY")
}

// SearchRecipes forwards the query to Spoonacular when a key is configured
// and otherwise serves the built-in mock set, flagged so the caller can
// tell placeholders from real results.
func (s *recipeSearchService) SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest, userID string) (domain.RecipeSearchResponse, error) {
	apiKey := s.resolveAPIKey(ctx, userID)
	if apiKey == "" {
		return mockSearchResponse(req.Query), nil
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("addRecipeInformation", "true")
	params.Set("number", "12")
	if req.Query != "" {
		params.Set("query", req.Query)
	}
	if req.Cuisine != "" {
		params.Set("cuisine", req.Cuisine)
	}
	if req.Diet != "" {
		params.Set("diet", req.Diet)
	}
	if req.Type != "" {
		params.Set("type", req.Type)
	}

	body, err := s.get(ctx, fmt.Sprintf("%s/complexSearch?%s", spoonacularBase, params.Encode()))
	if err != nil {
		return domain.RecipeSearchResponse{}, err
	}

	var result domain.RecipeSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.RecipeSearchResponse{}, fmt.Errorf("%w: %v", domain.ErrSpoonacularUpstream, err)
	}
	result.IsMock = false

	return result, nil
}

func (s *recipeSearchService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (json.RawMessage, error) {
	apiKey := s.resolveAPIKey(ctx, userID)
	if apiKey == "" {
		return nil, domain.ErrMissingSpoonacularKey
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)

	body, err := s.get(ctx, fmt.Sprintf("%s/%s/information?%s", spoonacularBase, url.PathEscape(recipeID), params.Encode()))
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

func (s *recipeSearchService) get(ctx context.Context, endpoint string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSpoonacularUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSpoonacularUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		var upstream struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &upstream) == nil && upstream.Message != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrSpoonacularUpstream, upstream.Message)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrSpoonacularUpstream, resp.Status)
	}

	return body, nil
}

func mockSearchResponse(query string) domain.RecipeSearchResponse {
	results := make([]domain.ExternalRecipe, 0, len(mockRecipes))
	needle := strings.ToLower(query)
	for _, recipe := range mockRecipes {
		if query == "" || matchesMockRecipe(recipe, needle) {
			results = append(results, recipe)
		}
	}

	return domain.RecipeSearchResponse{
		Results:      results,
		TotalResults: len(mockRecipes),
		IsMock:       true,
	}
}

func matchesMockRecipe(recipe domain.ExternalRecipe, needle string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), needle) {
		return true
	}
	for _, cuisine := range recipe.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), needle) {
			return true
		}
	}
	return false
}
