// Package repository is the storage boundary for the customer/order
// directory. Business logic reads full snapshots through DirectoryReader
// and writes whole field groups through DirectoryWriter; the last write
// wins.
package repository

import (
	"context"
	"errors"

	"digitaltailor-backend/models"
)

var (
	ErrNotFound  = errors.New("repository: not found")
	ErrDuplicate = errors.New("repository: duplicate")
)

type DirectoryReader interface {
	// ListCustomers and ListOrders return the collections in insertion order.
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	FindCustomerByMobile(ctx context.Context, mobile string) (models.Customer, error)
}

type DirectoryWriter interface {
	// CreateCustomer and CreateOrder assign the id and return the stored value.
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, c models.Customer) error
	SetCustomerProfilePicture(ctx context.Context, id, ref string) error

	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	UpdateOrderMessages(ctx context.Context, id string, msgs []models.Message) error
	UpdateOrderPhotos(ctx context.Context, id string, photos []string) error
	UpdateOrderPayment(ctx context.Context, id string, p models.PaymentDetails) error
}

type DirectoryStore interface {
	DirectoryReader
	DirectoryWriter
}

type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]models.MessageTemplate, error)
	GetTemplate(ctx context.Context, id string) (models.MessageTemplate, error)
	GetTemplateByKey(ctx context.Context, key string) (models.MessageTemplate, error)
	CreateTemplate(ctx context.Context, t models.MessageTemplate) (models.MessageTemplate, error)
	UpdateTemplate(ctx context.Context, t models.MessageTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
}

type NotificationLogStore interface {
	CreateNotificationLog(ctx context.Context, l models.NotificationLog) error
	ListNotificationLogs(ctx context.Context, orderID string) ([]models.NotificationLog, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	UpdateUser(ctx context.Context, u models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
}
