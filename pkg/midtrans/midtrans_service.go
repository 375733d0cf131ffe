package midtrans

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"Savora-Admin/internal/utils"
	"Savora-Admin/pkg/user"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
	}
}

func newSnapClient() snap.Client {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return client
}

func planAmount(plan string) (int64, error) {
	switch plan {
	case domain.PlanPro:
		return domain.PlanPriceProIDR, nil
	case domain.PlanPremium:
		return domain.PlanPricePremiumIDR, nil
	default:
		return 0, domain.ErrInvalidPlan
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	amount, err := planAmount(req.Plan)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}

	orderID := fmt.Sprintf("SAVORA-%s", uuid.New().String())

	client := newSnapClient()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Name:  fmt.Sprintf("Savora %s Plan", req.Plan),
				Price: amount,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := client.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.PlanTransaction{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Plan:    req.Plan,
		Amount:  amount,
		Status:  "Pending",
	}

	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleWebhook applies a Midtrans status notification. Settlement flips
// the user's plan; deny/cancel/expire mark the transaction failed. Other
// statuses leave the transaction pending.
func (s *midtransService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.TransactionStatus == "capture" && req.FraudStatus != "accept" {
			return nil
		}

		usr, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
		if err != nil {
			return err
		}
		usr.Plan = transaction.Plan
		if err := s.userRepository.UpdateUser(ctx, usr); err != nil {
			return err
		}

		transaction.Status = "Settled"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	case "deny", "cancel", "expire":
		transaction.Status = "Failed"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	default:
		return nil
	}
}
