package application

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/order"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var (
	ErrBuyerProfileMissing = errors.New("no buyer profile found for this user")
	ErrOrderNotFound       = errors.New("order not found or access denied")
	ErrOrderFieldsMissing  = errors.New("missing required fields: items, total_amount")
)

type OrderService struct {
	Repos *repository.Repos
}

func NewOrderService(repos *repository.Repos) *OrderService {
	return &OrderService{
		Repos: repos,
	}
}

// buyerFor resolves the buyer profile behind an authenticated user.
func (s *OrderService) buyerFor(userID uuid.UUID) (uint, error) {
	profile, err := s.Repos.Buyer.GetBuyerByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrBuyerProfileMissing
		}
		return 0, err
	}
	return profile.ID, nil
}

func (s *OrderService) ListMyOrders(userID uuid.UUID) ([]order.Order, error) {
	buyerID, err := s.buyerFor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Order.ListOrdersByBuyerID(buyerID)
}

func (s *OrderService) CreateOrder(userID uuid.UUID, input order.CreateOrderInput) (order.Order, error) {
	buyerID, err := s.buyerFor(userID)
	if err != nil {
		return order.Order{}, err
	}

	if len(input.Items) == 0 || input.TotalAmount == nil {
		return order.Order{}, ErrOrderFieldsMissing
	}

	o := order.Order{
		BuyerID:       buyerID,
		Items:         datatypes.JSON(input.Items),
		TotalAmount:   *input.TotalAmount,
		Status:        "paid",
		PaymentMethod: "mpesa",
	}
	if input.Status != nil {
		o.Status = *input.Status
	}
	if input.PaymentMethod != nil {
		o.PaymentMethod = *input.PaymentMethod
	}

	if err := s.Repos.Order.CreateOrder(&o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (s *OrderService) GetOrder(userID uuid.UUID, id uint) (order.Order, error) {
	buyerID, err := s.buyerFor(userID)
	if err != nil {
		return order.Order{}, err
	}

	o, err := s.Repos.Order.GetOrderForBuyer(id, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Order{}, ErrOrderNotFound
		}
		return order.Order{}, err
	}
	return o, nil
}

// GetStats sums the caller's order history. A user without a buyer
// profile simply has zero orders, not an error.
func (s *OrderService) GetStats(userID uuid.UUID) (int, float64, error) {
	buyerID, err := s.buyerFor(userID)
	if err != nil {
		if errors.Is(err, ErrBuyerProfileMissing) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	orders, err := s.Repos.Order.ListOrdersByBuyerID(buyerID)
	if err != nil {
		return 0, 0, err
	}

	var totalSpent float64
	for _, o := range orders {
		totalSpent += o.TotalAmount
	}
	totalSpent = math.Round(totalSpent*100) / 100

	return len(orders), totalSpent, nil
}
