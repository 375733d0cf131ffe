package midtrans

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMidtransRepository struct {
	transactions map[string]*entities.PlanTransaction
}

func newFakeMidtransRepository() *fakeMidtransRepository {
	return &fakeMidtransRepository{transactions: make(map[string]*entities.PlanTransaction)}
}

func (r *fakeMidtransRepository) CreateTransaction(_ context.Context, transaction *entities.PlanTransaction) error {
	copied := *transaction
	r.transactions[transaction.OrderID] = &copied
	return nil
}

func (r *fakeMidtransRepository) GetTransactionByOrderID(_ context.Context, orderID string) (*entities.PlanTransaction, error) {
	transaction, ok := r.transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeMidtransRepository) UpdateTransaction(_ context.Context, transaction *entities.PlanTransaction) error {
	if _, ok := r.transactions[transaction.OrderID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *transaction
	r.transactions[transaction.OrderID] = &copied
	return nil
}

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
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUsers(context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	copied := *user
	r.users[user.ID.String()] = &copied
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) CheckEmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func seedTransaction(t *testing.T, repo *fakeMidtransRepository, users *fakeUserRepository, plan string) *entities.PlanTransaction {
	t.Helper()

	usr := &entities.User{
		ID:    uuid.New(),
		Name:  "Demo User",
		Email: "demo@savora.com",
		Plan:  domain.PlanFree,
	}
	users.users[usr.ID.String()] = usr

	transaction := &entities.PlanTransaction{
		ID:      uuid.New(),
		UserID:  usr.ID,
		OrderID: "SAVORA-" + uuid.NewString(),
		Plan:    plan,
		Amount:  domain.PlanPriceProIDR,
		Status:  "Pending",
	}
	require.NoError(t, repo.CreateTransaction(context.Background(), transaction))
	return transaction
}

func TestHandleWebhook_Settlement(t *testing.T) {
	repo := newFakeMidtransRepository()
	users := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewMidtransService(repo, users)
	ctx := context.Background()

	transaction := seedTransaction(t, repo, users, domain.PlanPro)

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
		OrderID:           transaction.OrderID,
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)

	require.Equal(t, "Settled", repo.transactions[transaction.OrderID].Status)
	require.Equal(t, domain.PlanPro, users.users[transaction.UserID.String()].Plan)
}

func TestHandleWebhook_CaptureRequiresAcceptedFraudCheck(t *testing.T) {
	repo := newFakeMidtransRepository()
	users := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewMidtransService(repo, users)
	ctx := context.Background()

	transaction := seedTransaction(t, repo, users, domain.PlanPremium)

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
		OrderID:           transaction.OrderID,
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", repo.transactions[transaction.OrderID].Status)
	require.Equal(t, domain.PlanFree, users.users[transaction.UserID.String()].Plan)

	err = service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
		OrderID:           transaction.OrderID,
		TransactionStatus: "capture",
		FraudStatus:       "accept",
	})
	require.NoError(t, err)
	require.Equal(t, "Settled", repo.transactions[transaction.OrderID].Status)
	require.Equal(t, domain.PlanPremium, users.users[transaction.UserID.String()].Plan)
}

func TestHandleWebhook_FailureStatuses(t *testing.T) {
	repo := newFakeMidtransRepository()
	users := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewMidtransService(repo, users)
	ctx := context.Background()

	for _, status := range []string{"deny", "cancel", "expire"} {
		transaction := seedTransaction(t, repo, users, domain.PlanPro)

		err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
			OrderID:           transaction.OrderID,
			TransactionStatus: status,
		})
		require.NoError(t, err)
		require.Equal(t, "Failed", repo.transactions[transaction.OrderID].Status)
		require.Equal(t, domain.PlanFree, users.users[transaction.UserID.String()].Plan)
	}
}

func TestHandleWebhook_UnknownOrderAndStatus(t *testing.T) {
	repo := newFakeMidtransRepository()
	users := &fakeUserRepository{users: make(map[string]*entities.User)}
	service := NewMidtransService(repo, users)
	ctx := context.Background()

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
		OrderID:           "SAVORA-missing",
		TransactionStatus: "settlement",
	})
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)

	transaction := seedTransaction(t, repo, users, domain.PlanPro)
	err = service.HandleWebhook(ctx, domain.MidtransWebhookRequest{
		OrderID:           transaction.OrderID,
		TransactionStatus: "pending",
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", repo.transactions[transaction.OrderID].Status)
}

func TestPlanAmount(t *testing.T) {
	amount, err := planAmount(domain.PlanPro)
	require.NoError(t, err)
	require.Equal(t, int64(domain.PlanPriceProIDR), amount)

	amount, err = planAmount(domain.PlanPremium)
	require.NoError(t, err)
	require.Equal(t, int64(domain.PlanPricePremiumIDR), amount)

	_, err = planAmount("Enterprise")
	require.ErrorIs(t, err, domain.ErrInvalidPlan)
}
