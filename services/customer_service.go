package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/utils"

	"go.uber.org/zap"
)

var (
	ErrCustomerExists   = errors.New("customer with this mobile number already exists")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmptyImage       = errors.New("image reference is required")
)

type CustomerService struct {
	store  repository.DirectoryStore
	hub    *Hub
	logger *zap.Logger
	now    func() time.Time
}

func NewCustomerService(store repository.DirectoryStore, hub *Hub, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{store: store, hub: hub, logger: logger, now: time.Now}
}

// CustomerInput is the editable part of a customer record.
type CustomerInput struct {
	Name         string
	FatherName   string
	Address      string
	MobileNumber string
	CNIC         string
}

// mobileKey is the stored and compared form of a mobile number.
func mobileKey(mobile string) string {
	return utils.CleanPhone(strings.TrimSpace(mobile))
}

func (s *CustomerService) Register(ctx context.Context, in CustomerInput) (models.Customer, error) {
	mobile := mobileKey(in.MobileNumber)
	if _, err := s.store.FindCustomerByMobile(ctx, mobile); err == nil {
		return models.Customer{}, ErrCustomerExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.Customer{}, err
	}

	now := s.now()
	c, err := s.store.CreateCustomer(ctx, models.Customer{
		Name:         strings.TrimSpace(in.Name),
		FatherName:   strings.TrimSpace(in.FatherName),
		Address:      strings.TrimSpace(in.Address),
		MobileNumber: mobile,
		CNIC:         strings.TrimSpace(in.CNIC),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Customer{}, ErrCustomerExists
		}
		return models.Customer{}, err
	}

	s.logger.Info("Customer registered", zap.String("customer_id", c.ID))
	s.publish()
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in CustomerInput) (models.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	mobile := mobileKey(in.MobileNumber)
	if mobile != c.MobileNumber {
		other, err := s.store.FindCustomerByMobile(ctx, mobile)
		if err == nil && other.ID != id {
			return models.Customer{}, ErrCustomerExists
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return models.Customer{}, err
		}
	}

	c.Name = strings.TrimSpace(in.Name)
	c.FatherName = strings.TrimSpace(in.FatherName)
	c.Address = strings.TrimSpace(in.Address)
	c.MobileNumber = mobile
	c.CNIC = strings.TrimSpace(in.CNIC)
	c.UpdatedAt = s.now()
	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		return models.Customer{}, s.mapErr(err)
	}

	s.publish()
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (models.Customer, error) {
	c, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, s.mapErr(err)
	}
	return c, nil
}

// List returns every customer matching term, in registration order.
func (s *CustomerService) List(ctx context.Context, term string) ([]models.Customer, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCustomers(customers, term), nil
}

// SetProfilePicture replaces the customer's picture with ref.
func (s *CustomerService) SetProfilePicture(ctx context.Context, id, ref string) (models.Customer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Customer{}, ErrEmptyImage
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	c.ProfilePicture = models.SetProfilePicture(c.ProfilePicture, ref)
	if err := s.store.SetCustomerProfilePicture(ctx, id, c.ProfilePicture); err != nil {
		return models.Customer{}, s.mapErr(err)
	}

	s.publish()
	return c, nil
}

// LoginByMobile resolves the customer owning mobile, ignoring separators.
// Customers have no password; the mobile number is the whole credential.
func (s *CustomerService) LoginByMobile(ctx context.Context, mobile string) (models.Customer, error) {
	c, err := s.store.FindCustomerByMobile(ctx, mobileKey(mobile))
	if err != nil {
		return models.Customer{}, s.mapErr(err)
	}
	return c, nil
}

func (s *CustomerService) mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

func (s *CustomerService) publish() {
	if s.hub != nil {
		s.hub.Publish()
	}
}
