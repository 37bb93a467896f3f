package repository_test

import (
	"context"
	"testing"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *repository.GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise every connection gets its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := repository.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestGormStoreCustomers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.CreateCustomer(ctx, models.Customer{
		Name: "Ali Khan", FatherName: "Akbar", Address: "Lahore", MobileNumber: "03001234567",
		CreatedAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := store.CreateCustomer(ctx, models.Customer{
		Name: "Bilal", FatherName: "Bashir", Address: "Multan", MobileNumber: "03111111111",
	})
	require.NoError(t, err)

	all, err := store.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	found, err := store.FindCustomerByMobile(ctx, "03001234567")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = store.FindCustomerByMobile(ctx, "0000")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	first.Address = "Karachi"
	require.NoError(t, store.UpdateCustomer(ctx, first))
	require.NoError(t, store.SetCustomerProfilePicture(ctx, first.ID, "data:image/jpeg;base64,xyz"))

	got, err := store.GetCustomer(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Karachi", got.Address)
	assert.Equal(t, "data:image/jpeg;base64,xyz", got.ProfilePicture)

	assert.ErrorIs(t, store.UpdateCustomer(ctx, models.Customer{ID: "missing"}), repository.ErrNotFound)
	_, err = store.GetCustomer(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormStoreOrderFieldGroups(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	m := models.Measurements{SuitType: models.SuitShalwarKameez, Chest: "40.5", NumPockets: 2, DeliveryDate: "2024-04-01"}
	p := models.DerivePayment(decimal.NewFromInt(1500), decimal.NewFromInt(500))
	created, err := store.CreateOrder(ctx, models.NewOrder("cust-1", m, p, time.Now()))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, m, got.Measurements)
	assert.True(t, got.Payment.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, models.PaymentUnpaid, got.Payment.Status)
	assert.Empty(t, got.Messages)
	assert.Empty(t, got.Photos)

	require.NoError(t, store.UpdateOrderStatus(ctx, created.ID, models.StatusReady))

	msgs := models.AppendMessage(nil, "اردو", "english", time.Now())
	require.NoError(t, store.UpdateOrderMessages(ctx, created.ID, msgs))
	require.NoError(t, store.UpdateOrderPhotos(ctx, created.ID, []string{"p1", "p2"}))
	require.NoError(t, store.UpdateOrderPayment(ctx, created.ID, got.Payment.RecordPayment(decimal.NewFromInt(1000))))

	got, err = store.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, got.Status)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, msgs[0].ID, got.Messages[0].ID)
	assert.Equal(t, "اردو", got.Messages[0].Urdu)
	assert.Equal(t, []string{"p1", "p2"}, got.Photos)
	assert.Equal(t, models.PaymentPaid, got.Payment.Status)
	assert.True(t, got.Payment.RemainingAmount.IsZero())
	assert.Equal(t, m, got.Measurements, "measurements untouched by field-group writes")

	assert.ErrorIs(t, store.UpdateOrderStatus(ctx, "missing", models.StatusReady), repository.ErrNotFound)
	_, err = store.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormStoreTemplates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tpl, err := store.CreateTemplate(ctx, models.MessageTemplate{Key: "order_ready", Urdu: "تیار", English: "Ready", IsActive: true})
	require.NoError(t, err)

	_, err = store.CreateTemplate(ctx, models.MessageTemplate{Key: "order_ready", Urdu: "x", English: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	tpl.English = "Your suit is ready"
	tpl.IsActive = false
	require.NoError(t, store.UpdateTemplate(ctx, tpl))

	got, err := store.GetTemplateByKey(ctx, "order_ready")
	require.NoError(t, err)
	assert.Equal(t, "Your suit is ready", got.English)
	assert.False(t, got.IsActive)

	list, err := store.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, store.DeleteTemplate(ctx, tpl.ID))
	assert.ErrorIs(t, store.DeleteTemplate(ctx, tpl.ID), repository.ErrNotFound)
}

func TestGormStoreUsers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	u, err := store.CreateUser(ctx, models.User{Email: "tailor@example.com", Phone: "03005555555", Name: "Usman", Password: "hash"})
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, models.User{Email: "tailor@example.com", Name: "Other", Password: "hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	byPhone, err := store.FindUserByIdentifier(ctx, " 03005555555 ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byPhone.ID)

	u.ShopName = "Usman Tailors"
	u.WhatsAppNotifications = true
	require.NoError(t, store.UpdateUser(ctx, u))

	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Usman Tailors", got.ShopName)
	assert.True(t, got.WhatsAppNotifications)
}

func TestGormStoreNotificationLogs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	now := time.Now()
	require.NoError(t, store.CreateNotificationLog(ctx, models.NotificationLog{OrderID: "o1", Channel: models.ChannelSMS, Status: models.NotificationSent, SentAt: now.Add(-time.Hour)}))
	require.NoError(t, store.CreateNotificationLog(ctx, models.NotificationLog{OrderID: "o1", Channel: models.ChannelSMS, Status: models.NotificationFailed, SentAt: now}))
	require.NoError(t, store.CreateNotificationLog(ctx, models.NotificationLog{OrderID: "o2", Channel: models.ChannelEmail, Status: models.NotificationSent, SentAt: now}))

	logs, err := store.ListNotificationLogs(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.NotificationFailed, logs[0].Status)
}
