package user

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"Savora-Admin/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	copied := *user
	r.users[user.ID.String()] = &copied
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

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUsers(_ context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	if _, ok := r.users[user.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID.String()] = &copied
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestUserService_Register(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: "demo123",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, res.Role)
	require.Equal(t, domain.PlanFree, res.Plan)

	stored := repo.users[res.ID]
	require.NotEqual(t, "demo123", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("demo123")))

	_, err = service.Register(ctx, domain.RegisterRequest{
		Name:     "Other",
		Email:    "demo@savora.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	_, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: "demo123",
	})
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{Email: "demo@savora.com", Password: "demo123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "demo@savora.com", res.User.Email)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "demo@savora.com", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// unknown emails get the same error as wrong passwords
	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@savora.com", Password: "demo123"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_UpdateMe(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: "demo123",
	})
	require.NoError(t, err)

	err = service.UpdateMe(ctx, domain.UpdateUserRequest{
		Name:      "Renamed",
		OpenAIKey: "sk-test",
	}, res.ID)
	require.NoError(t, err)

	stored := repo.users[res.ID]
	require.Equal(t, "Renamed", stored.Name)
	require.Equal(t, "sk-test", stored.OpenAIKey)
	require.Equal(t, "demo@savora.com", stored.Email)

	err = service.UpdateMe(ctx, domain.UpdateUserRequest{Name: "x"}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_AdminUpdateAndDelete(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: "demo123",
	})
	require.NoError(t, err)

	err = service.UpdateUserByID(ctx, res.ID, domain.AdminUpdateUserRequest{
		Role:   domain.RoleManager,
		Plan:   domain.PlanPro,
		Status: "Suspended",
	})
	require.NoError(t, err)

	me, err := service.Me(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleManager, me.Role)
	require.Equal(t, domain.PlanPro, me.Plan)
	require.Equal(t, "Suspended", me.Status)

	require.NoError(t, service.DeleteUser(ctx, res.ID))
	require.ErrorIs(t, service.DeleteUser(ctx, res.ID), domain.ErrUserNotFound)
}

func TestUserService_ResetPassword(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: "demo123",
	})
	require.NoError(t, err)

	token, err := jwtService.GenerateTokenForgetPassword(map[string]any{"user_id": res.ID}, 30*time.Minute)
	require.NoError(t, err)

	require.NoError(t, service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:    token,
		Password: "newpass1",
	}))

	_, err = service.Login(ctx, domain.LoginRequest{Email: "demo@savora.com", Password: "newpass1"})
	require.NoError(t, err)

	err = service.ResetPassword(ctx, domain.ResetPasswordRequest{Token: "garbage", Password: "whatever"})
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
