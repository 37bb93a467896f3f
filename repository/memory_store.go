package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"digitaltailor-backend/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-process store used by tests and demos.
// Every read returns copies so callers can never edit shared state.
type MemoryStore struct {
	mu        sync.RWMutex
	customers []models.Customer
	orders    []models.Order
	templates []models.MessageTemplate
	logs      []models.NotificationLog
	users     []models.User
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

var (
	_ DirectoryStore       = (*MemoryStore)(nil)
	_ TemplateStore        = (*MemoryStore)(nil)
	_ NotificationLogStore = (*MemoryStore)(nil)
	_ UserStore            = (*MemoryStore)(nil)
)

func (s *MemoryStore) ListCustomers(_ context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...), nil
}

func (s *MemoryStore) ListOrders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.customerIndex(id); i >= 0 {
		return s.customers[i], nil
	}
	return models.Customer{}, ErrNotFound
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.orderIndex(id); i >= 0 {
		return cloneOrder(s.orders[i]), nil
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryStore) FindCustomerByMobile(_ context.Context, mobile string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.MobileNumber == mobile {
			return c, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

func (s *MemoryStore) CreateCustomer(_ context.Context, c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := s.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	s.customers = append(s.customers, c)
	return c, nil
}

func (s *MemoryStore) UpdateCustomer(_ context.Context, c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.customerIndex(c.ID)
	if i < 0 {
		return ErrNotFound
	}
	cur := &s.customers[i]
	cur.Name = c.Name
	cur.FatherName = c.FatherName
	cur.Address = c.Address
	cur.MobileNumber = c.MobileNumber
	cur.CNIC = c.CNIC
	cur.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStore) SetCustomerProfilePicture(_ context.Context, id, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.customerIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.customers[i].ProfilePicture = ref
	s.customers[i].UpdatedAt = s.now()
	return nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now()
	}
	o.UpdatedAt = o.CreatedAt
	o = cloneOrder(o)
	s.orders = append(s.orders, o)
	return cloneOrder(o), nil
}

func (s *MemoryStore) updateOrder(id string, fn func(o *models.Order)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.orderIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	fn(&s.orders[i])
	s.orders[i].UpdatedAt = s.now()
	return nil
}

func (s *MemoryStore) UpdateOrderStatus(_ context.Context, id string, status models.OrderStatus) error {
	return s.updateOrder(id, func(o *models.Order) { o.Status = status })
}

func (s *MemoryStore) UpdateOrderMessages(_ context.Context, id string, msgs []models.Message) error {
	return s.updateOrder(id, func(o *models.Order) { o.Messages = append([]models.Message{}, msgs...) })
}

func (s *MemoryStore) UpdateOrderPhotos(_ context.Context, id string, photos []string) error {
	return s.updateOrder(id, func(o *models.Order) { o.Photos = append([]string{}, photos...) })
}

func (s *MemoryStore) UpdateOrderPayment(_ context.Context, id string, p models.PaymentDetails) error {
	return s.updateOrder(id, func(o *models.Order) { o.Payment = p })
}

func (s *MemoryStore) ListTemplates(_ context.Context) ([]models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MessageTemplate(nil), s.templates...), nil
}

func (s *MemoryStore) GetTemplate(_ context.Context, id string) (models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return models.MessageTemplate{}, ErrNotFound
}

func (s *MemoryStore) GetTemplateByKey(_ context.Context, key string) (models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.Key == key {
			return t, nil
		}
	}
	return models.MessageTemplate{}, ErrNotFound
}

func (s *MemoryStore) CreateTemplate(_ context.Context, t models.MessageTemplate) (models.MessageTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.templates {
		if existing.Key == t.Key {
			return models.MessageTemplate{}, ErrDuplicate
		}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = s.now()
	t.UpdatedAt = t.CreatedAt
	s.templates = append(s.templates, t)
	return t, nil
}

func (s *MemoryStore) UpdateTemplate(_ context.Context, t models.MessageTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			t.CreatedAt = s.templates[i].CreatedAt
			t.UpdatedAt = s.now()
			s.templates[i] = t
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteTemplate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CreateNotificationLog(_ context.Context, l models.NotificationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.logs = append(s.logs, l)
	return nil
}

func (s *MemoryStore) ListNotificationLogs(_ context.Context, orderID string) ([]models.NotificationLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.NotificationLog
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].OrderID == orderID {
			out = append(out, s.logs[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email || (u.Phone != "" && existing.Phone == u.Phone) {
			return models.User{}, ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, u)
	return u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) FindUserByIdentifier(_ context.Context, identifier string) (models.User, error) {
	identifier = strings.TrimSpace(identifier)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == identifier || u.Phone == identifier {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) UpdateUser(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			u.Password = s.users[i].Password
			u.CreatedAt = s.users[i].CreatedAt
			u.UpdatedAt = s.now()
			s.users[i] = u
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...), nil
}

func (s *MemoryStore) customerIndex(id string) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneOrder(o models.Order) models.Order {
	o.Messages = append([]models.Message{}, o.Messages...)
	o.Photos = append([]string{}, o.Photos...)
	return o
}
