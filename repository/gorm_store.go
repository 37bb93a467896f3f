package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"digitaltailor-backend/models"

	"gorm.io/gorm"
)

// GormStore keeps everything in one SQL database (postgres in production,
// sqlite for local runs and tests).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var (
	_ DirectoryStore       = (*GormStore)(nil)
	_ TemplateStore        = (*GormStore)(nil)
	_ NotificationLogStore = (*GormStore)(nil)
	_ UserStore            = (*GormStore)(nil)
)

// Migrate creates or updates every table the service owns.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Order{},
		&models.MessageTemplate{},
		&models.NotificationLog{},
	)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ========= customers =========

func (s *GormStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *GormStore) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return models.Customer{}, notFound(err)
	}
	return c, nil
}

func (s *GormStore) FindCustomerByMobile(ctx context.Context, mobile string) (models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("mobile_number = ?", mobile).
		Order("created_at ASC").First(&c).Error; err != nil {
		return models.Customer{}, notFound(err)
	}
	return c, nil
}

func (s *GormStore) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *GormStore) UpdateCustomer(ctx context.Context, c models.Customer) error {
	res := s.db.WithContext(ctx).Model(&models.Customer{ID: c.ID}).
		Select("name", "father_name", "address", "mobile_number", "cnic").
		Updates(&c)
	return affected(res, "update customer")
}

func (s *GormStore) SetCustomerProfilePicture(ctx context.Context, id, ref string) error {
	res := s.db.WithContext(ctx).Model(&models.Customer{ID: id}).
		Select("profile_picture").
		Updates(&models.Customer{ProfilePicture: ref})
	return affected(res, "set profile picture")
}

// ========= orders =========

func (s *GormStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return models.Order{}, notFound(err)
	}
	return o, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Order{ID: id}).
		Select("status").
		Updates(&models.Order{Status: status})
	return affected(res, "update order status")
}

func (s *GormStore) UpdateOrderMessages(ctx context.Context, id string, msgs []models.Message) error {
	res := s.db.WithContext(ctx).Model(&models.Order{ID: id}).
		Select("messages").
		Updates(&models.Order{Messages: msgs})
	return affected(res, "update order messages")
}

func (s *GormStore) UpdateOrderPhotos(ctx context.Context, id string, photos []string) error {
	res := s.db.WithContext(ctx).Model(&models.Order{ID: id}).
		Select("photos").
		Updates(&models.Order{Photos: photos})
	return affected(res, "update order photos")
}

func (s *GormStore) UpdateOrderPayment(ctx context.Context, id string, p models.PaymentDetails) error {
	res := s.db.WithContext(ctx).Model(&models.Order{ID: id}).
		Select("payment_stitching_price", "payment_advance_paid", "payment_remaining_amount", "payment_status").
		Updates(&models.Order{Payment: p})
	return affected(res, "update order payment")
}

// ========= templates =========

func (s *GormStore) ListTemplates(ctx context.Context) ([]models.MessageTemplate, error) {
	var templates []models.MessageTemplate
	if err := s.db.WithContext(ctx).Order("template_key ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (s *GormStore) GetTemplate(ctx context.Context, id string) (models.MessageTemplate, error) {
	var t models.MessageTemplate
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return models.MessageTemplate{}, notFound(err)
	}
	return t, nil
}

func (s *GormStore) GetTemplateByKey(ctx context.Context, key string) (models.MessageTemplate, error) {
	var t models.MessageTemplate
	if err := s.db.WithContext(ctx).Where("template_key = ?", key).First(&t).Error; err != nil {
		return models.MessageTemplate{}, notFound(err)
	}
	return t, nil
}

func (s *GormStore) CreateTemplate(ctx context.Context, t models.MessageTemplate) (models.MessageTemplate, error) {
	if _, err := s.GetTemplateByKey(ctx, t.Key); err == nil {
		return models.MessageTemplate{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return models.MessageTemplate{}, err
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return models.MessageTemplate{}, fmt.Errorf("create template: %w", err)
	}
	return t, nil
}

func (s *GormStore) UpdateTemplate(ctx context.Context, t models.MessageTemplate) error {
	res := s.db.WithContext(ctx).Model(&models.MessageTemplate{ID: t.ID}).
		Select("template_key", "urdu", "english", "is_active").
		Updates(&t)
	return affected(res, "update template")
}

func (s *GormStore) DeleteTemplate(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MessageTemplate{})
	return affected(res, "delete template")
}

// ========= notification logs =========

func (s *GormStore) CreateNotificationLog(ctx context.Context, l models.NotificationLog) error {
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		return fmt.Errorf("create notification log: %w", err)
	}
	return nil
}

func (s *GormStore) ListNotificationLogs(ctx context.Context, orderID string) ([]models.NotificationLog, error) {
	var logs []models.NotificationLog
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).
		Order("sent_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}
	return logs, nil
}

// ========= users =========

func (s *GormStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ? OR (phone <> '' AND phone = ?)", u.Email, u.Phone).
		First(&existing).Error
	if err == nil {
		return models.User{}, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("check user: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (s *GormStore) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	identifier = strings.TrimSpace(identifier)
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ? OR phone = ?", identifier, identifier).
		First(&u).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, u models.User) error {
	res := s.db.WithContext(ctx).Model(&models.User{ID: u.ID}).
		Select("Name", "Phone", "Email", "ShopName", "ShopAddress",
			"SMSNotifications", "WhatsAppNotifications", "EmailDigest", "LastLogin").
		Updates(&u)
	return affected(res, "update user")
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func affected(res *gorm.DB, op string) error {
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
