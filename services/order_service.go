package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

type OrderService struct {
	store    repository.DirectoryStore
	notifier *Notifier
	hub      *Hub
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(store repository.DirectoryStore, notifier *Notifier, hub *Hub, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		store:    store,
		notifier: notifier,
		hub:      hub,
		logger:   logger,
		now:      time.Now,
	}
}

type OrderInput struct {
	CustomerID     string
	Measurements   models.Measurements
	StitchingPrice decimal.Decimal
	AdvancePaid    decimal.Decimal
}

// Create books a new PENDING order for an existing customer.
func (s *OrderService) Create(ctx context.Context, in OrderInput) (models.Order, error) {
	if _, err := s.store.GetCustomer(ctx, in.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Order{}, ErrCustomerNotFound
		}
		return models.Order{}, err
	}

	o := models.NewOrder(in.CustomerID, in.Measurements,
		models.DerivePayment(in.StitchingPrice, in.AdvancePaid), s.now())
	o.UpdatedAt = o.CreatedAt

	created, err := s.store.CreateOrder(ctx, o)
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", created.ID),
		zap.String("customer_id", created.CustomerID),
		zap.String("payment_status", string(created.Payment.Status)))
	s.publish()
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return o, nil
}

// View resolves the customer name for a single order.
func (s *OrderService) View(ctx context.Context, id string) (OrderView, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return OrderView{}, err
	}
	name := UnknownCustomerName
	if c, err := s.store.GetCustomer(ctx, o.CustomerID); err == nil {
		name = c.Name
	}
	return OrderView{Order: o, CustomerName: name}, nil
}

// List filters the order directory by term and resolves customer names.
func (s *OrderService) List(ctx context.Context, term string) ([]OrderView, error) {
	customers, orders, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	return ViewOrders(FilterOrders(orders, customers, term), customers), nil
}

// ForCustomer lists the orders owned by customerID in creation order.
func (s *OrderService) ForCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return OrdersForCustomer(orders, customerID), nil
}

// UpdateStatus moves the order to target. No message is sent.
func (s *OrderService) UpdateStatus(ctx context.Context, role models.UserRole, id string, target models.OrderStatus) (models.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	next, err := models.Transition(role, o.Status, target)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.store.UpdateOrderStatus(ctx, id, next); err != nil {
		return models.Order{}, s.mapErr(err)
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", id),
		zap.String("from", string(o.Status)),
		zap.String("to", string(next)))
	o.Status = next
	s.publish()
	return o, nil
}

// SendMessage prepends a bilingual message to the order's log and notifies
// the customer over the shop's enabled channels. The text is stored as
// given, blank included.
func (s *OrderService) SendMessage(ctx context.Context, id, urdu, english string) (models.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	o.Messages = models.AppendMessage(o.Messages, urdu, english, s.now())
	if err := s.store.UpdateOrderMessages(ctx, id, o.Messages); err != nil {
		return models.Order{}, s.mapErr(err)
	}
	s.publish()

	if c, err := s.store.GetCustomer(ctx, o.CustomerID); err == nil {
		s.notifier.NotifyCustomer(ctx, c, o.ID, o.Messages[0])
	} else {
		s.logger.Warn("Message stored but customer unresolved",
			zap.String("order_id", id),
			zap.String("customer_id", o.CustomerID))
	}
	return o, nil
}

// AddPhoto appends ref to the end of the order gallery.
func (s *OrderService) AddPhoto(ctx context.Context, id, ref string) (models.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Order{}, ErrEmptyImage
	}
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	o.Photos = models.AppendPhoto(o.Photos, ref)
	if err := s.store.UpdateOrderPhotos(ctx, id, o.Photos); err != nil {
		return models.Order{}, s.mapErr(err)
	}
	s.publish()
	return o, nil
}

// RecordPayment adds amount to the advance already paid.
func (s *OrderService) RecordPayment(ctx context.Context, id string, amount decimal.Decimal) (models.Order, error) {
	if !amount.IsPositive() {
		return models.Order{}, ErrInvalidAmount
	}
	o, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	o.Payment = o.Payment.RecordPayment(amount)
	if err := s.store.UpdateOrderPayment(ctx, id, o.Payment); err != nil {
		return models.Order{}, s.mapErr(err)
	}

	s.logger.Info("Payment recorded",
		zap.String("order_id", id),
		zap.String("amount", amount.String()),
		zap.String("remaining", o.Payment.RemainingAmount.String()))
	s.publish()
	return o, nil
}

// Snapshot returns the full directory for live subscribers.
func (s *OrderService) Snapshot(ctx context.Context) ([]models.Customer, []OrderView, error) {
	customers, orders, err := s.Directory(ctx)
	if err != nil {
		return nil, nil, err
	}
	return customers, ViewOrders(orders, customers), nil
}

// Directory reads both collections in insertion order.
func (s *OrderService) Directory(ctx context.Context) ([]models.Customer, []models.Order, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list customers: %w", err)
	}
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list orders: %w", err)
	}
	return customers, orders, nil
}

func (s *OrderService) mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (s *OrderService) publish() {
	if s.hub != nil {
		s.hub.Publish()
	}
}
