package inventory

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	items map[string]*entities.InventoryItem
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{items: make(map[string]*entities.InventoryItem)}
}

func (r *fakeInventoryRepository) AddItem(_ context.Context, item *entities.InventoryItem) error {
	copied := *item
	r.items[item.ID.String()] = &copied
	return nil
}

func (r *fakeInventoryRepository) GetItemByID(_ context.Context, id string) (*entities.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeInventoryRepository) GetItems(_ context.Context) ([]*entities.InventoryItem, error) {
	items := make([]*entities.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

func (r *fakeInventoryRepository) UpdateItem(_ context.Context, item *entities.InventoryItem) error {
	if _, ok := r.items[item.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *item
	r.items[item.ID.String()] = &copied
	return nil
}

func (r *fakeInventoryRepository) DeleteItem(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func TestInventoryService_AddItemClassifiesStatus(t *testing.T) {
	repo := newFakeInventoryRepository()
	service := NewInventoryService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	expired := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	res, err := service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name:     "Milk",
		Category: "Dairy",
		Quantity: "1L",
		Expiry:   expired,
		Location: "Fridge",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, StatusExpired, res.Status)

	soon := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	res, err = service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name:     "Eggs",
		Category: "Dairy",
		Quantity: "12 pcs",
		Expiry:   soon,
		Location: "Fridge",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, StatusExpiringSoon, res.Status)

	// no expiry date, always Fresh
	res, err = service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name:     "Salt",
		Category: "Condiments",
		Quantity: "500g",
		Location: "Pantry",
	}, userID)
	require.NoError(t, err)
	require.Equal(t, StatusFresh, res.Status)
	require.Nil(t, res.Expiry)
}

func TestInventoryService_AddItemBadInput(t *testing.T) {
	repo := newFakeInventoryRepository()
	service := NewInventoryService(repo)
	ctx := context.Background()

	_, err := service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name: "Rice", Category: "Grains", Quantity: "2kg", Location: "Pantry",
	}, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name: "Rice", Category: "Grains", Quantity: "2kg", Expiry: "15/06/2026", Location: "Pantry",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
	require.Empty(t, repo.items)
}

func TestInventoryService_UpdateItemRefreshesStatus(t *testing.T) {
	repo := newFakeInventoryRepository()
	service := NewInventoryService(repo)
	ctx := context.Background()

	fresh := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	res, err := service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name:     "Cheese",
		Category: "Dairy",
		Quantity: "250g",
		Expiry:   fresh,
		Location: "Fridge",
	}, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, StatusFresh, res.Status)

	expired := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	updated, err := service.UpdateItem(ctx, res.ID, domain.UpdateInventoryItemRequest{Expiry: &expired})
	require.NoError(t, err)
	require.Equal(t, StatusExpired, updated.Status)

	// partial update keeps untouched fields
	updated, err = service.UpdateItem(ctx, res.ID, domain.UpdateInventoryItemRequest{Quantity: "125g"})
	require.NoError(t, err)
	require.Equal(t, "Cheese", updated.Name)
	require.Equal(t, "125g", updated.Quantity)
	require.Equal(t, StatusExpired, updated.Status)

	_, err = service.UpdateItem(ctx, uuid.NewString(), domain.UpdateInventoryItemRequest{Name: "x"})
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestInventoryService_UpdateItemClearsExpiry(t *testing.T) {
	repo := newFakeInventoryRepository()
	service := NewInventoryService(repo)
	ctx := context.Background()

	expired := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	res, err := service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name:     "Honey",
		Category: "Condiments",
		Quantity: "1 jar",
		Expiry:   expired,
		Location: "Pantry",
	}, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, StatusExpired, res.Status)

	// omitted expiry leaves the date and status untouched
	updated, err := service.UpdateItem(ctx, res.ID, domain.UpdateInventoryItemRequest{Name: "Raw Honey"})
	require.NoError(t, err)
	require.NotNil(t, updated.Expiry)
	require.Equal(t, StatusExpired, updated.Status)

	// empty string removes the date, which classifies as Fresh
	empty := ""
	updated, err = service.UpdateItem(ctx, res.ID, domain.UpdateInventoryItemRequest{Expiry: &empty})
	require.NoError(t, err)
	require.Nil(t, updated.Expiry)
	require.Equal(t, StatusFresh, updated.Status)

	bad := "15/06/2026"
	_, err = service.UpdateItem(ctx, res.ID, domain.UpdateInventoryItemRequest{Expiry: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestInventoryService_DeleteItem(t *testing.T) {
	repo := newFakeInventoryRepository()
	service := NewInventoryService(repo)
	ctx := context.Background()

	res, err := service.AddItem(ctx, domain.AddInventoryItemRequest{
		Name: "Pasta", Category: "Grains", Quantity: "500g", Location: "Pantry",
	}, uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, service.DeleteItem(ctx, res.ID))
	require.ErrorIs(t, service.DeleteItem(ctx, res.ID), domain.ErrItemNotFound)
}
