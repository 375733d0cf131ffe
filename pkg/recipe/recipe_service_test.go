package recipe

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[string]*entities.Recipe)}
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	copied := *recipe
	r.recipes[recipe.ID.String()] = &copied
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (r *fakeRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		copied := *recipe
		recipes = append(recipes, &copied)
	}
	return recipes, nil
}

func (r *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if _, ok := r.recipes[recipe.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *recipe
	r.recipes[recipe.ID.String()] = &copied
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	if _, ok := r.recipes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.recipes, id)
	return nil
}

func TestRecipeService_AddRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	res, err := service.AddRecipe(ctx, domain.AddRecipeRequest{
		Title:           "Omelette",
		Cuisine:         "French",
		PrepTimeMinutes: 10,
		Calories:        280,
		Ingredients:     []string{"Eggs", "Cheese", "Milk"},
		Instructions:    "Beat eggs, cook, fold.",
	}, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, "Omelette", res.Title)
	require.Equal(t, []string{"Eggs", "Cheese", "Milk"}, res.Ingredients)

	_, err = service.AddRecipe(ctx, domain.AddRecipeRequest{Title: "x"}, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	res, err := service.AddRecipe(ctx, domain.AddRecipeRequest{
		Title:           "Tomato Rice",
		Cuisine:         "Indian",
		PrepTimeMinutes: 35,
		Ingredients:     []string{"Rice", "Tomatoes"},
		Instructions:    "Cook everything.",
	}, uuid.NewString())
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(ctx, res.ID, domain.UpdateRecipeRequest{
		Ingredients: []string{"Rice", "Tomatoes", "Onions"},
		Calories:    380,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Rice", "Tomatoes", "Onions"}, updated.Ingredients)
	require.Equal(t, 380, updated.Calories)
	require.Equal(t, "Tomato Rice", updated.Title)

	_, err = service.UpdateRecipe(ctx, uuid.NewString(), domain.UpdateRecipeRequest{Title: "x"})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_PlainTextIngredientsFallback(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	// legacy row, ingredients stored as plain text
	legacy := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Old Recipe",
		Ingredients: "eggs and flour",
	}
	require.NoError(t, repo.CreateRecipe(ctx, legacy))

	recipes, err := service.GetRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Equal(t, []string{"eggs and flour"}, recipes[0].Ingredients)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	res, err := service.AddRecipe(ctx, domain.AddRecipeRequest{
		Title:           "Pasta Carbonara",
		Cuisine:         "Italian",
		PrepTimeMinutes: 25,
		Ingredients:     []string{"Pasta", "Eggs"},
		Instructions:    "Cook pasta, mix.",
	}, uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(ctx, res.ID))
	require.ErrorIs(t, service.DeleteRecipe(ctx, res.ID), domain.ErrRecipeNotFound)
}
