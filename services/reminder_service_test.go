package services_test

import (
	"context"
	"testing"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDueTomorrow(t *testing.T) {
	now := time.Date(2024, 5, 9, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "due", Status: models.StatusReady, Measurements: models.Measurements{DeliveryDate: "2024-05-10"}},
		{ID: "delivered", Status: models.StatusDelivered, Measurements: models.Measurements{DeliveryDate: "2024-05-10"}},
		{ID: "today", Status: models.StatusPending, Measurements: models.Measurements{DeliveryDate: "2024-05-09"}},
		{ID: "no-date", Status: models.StatusPending},
	}
	assert.Equal(t, []string{"due"}, orderIDs(services.DueTomorrow(orders, now)))
}

func TestSendDeliveryReminders(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{SMS: true, EmailDigest: true})
	_, o := seedOrder(t, e, 1500, 500) // due 2024-05-10

	_, err := e.store.CreateUser(ctx, models.User{Email: "owner@shop.pk", Name: "Owner", EmailDigest: true})
	require.NoError(t, err)
	_, err = e.store.CreateUser(ctx, models.User{Email: "helper@shop.pk", Name: "Helper"})
	require.NoError(t, err)

	reminders := services.NewReminderService(e.store, e.store, e.store, e.orders, e.notifier, zaptest.NewLogger(t))
	services.SetReminderClock(reminders, func() time.Time {
		return time.Date(2024, 5, 9, 9, 0, 0, 0, time.Local)
	})
	services.SetOrderClock(e.orders, func() time.Time {
		return time.Date(2024, 5, 9, 9, 0, 1, 0, time.Local)
	})

	res := reminders.SendDeliveryReminders(ctx)
	assert.Equal(t, services.ReminderResult{Due: 1, Reminded: 1, DigestSent: 1}, res)

	got, err := e.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Contains(t, got.Messages[0].English, "Dear Ali Khan")
	assert.Contains(t, got.Messages[0].English, "Amount due: 1000")
	require.Len(t, e.texts.sent, 1)

	require.Len(t, e.email.sent, 1)
	assert.Equal(t, "owner@shop.pk", e.email.sent[0].To)
	assert.Equal(t, "Orders due 2024-05-10", e.email.sent[0].Subject)
	assert.Contains(t, e.email.sent[0].Body, o.ID)

	// a second run on the same day does not repeat the customer message
	res = reminders.SendDeliveryReminders(ctx)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, res.Reminded)
	assert.Len(t, e.texts.sent, 1)
}

func TestSendDeliveryRemindersUsesShopTemplate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	_, o := seedOrder(t, e, 2000, 0)

	_, err := e.store.CreateTemplate(ctx, models.MessageTemplate{
		Key:      models.TemplateDeliveryReminder,
		Urdu:     "[CustomerName] کل تشریف لائیں",
		English:  "[CustomerName], collect [OrderID] tomorrow, bring [RemainingAmount]",
		IsActive: true,
	})
	require.NoError(t, err)

	reminders := services.NewReminderService(e.store, e.store, e.store, e.orders, e.notifier, zaptest.NewLogger(t))
	services.SetReminderClock(reminders, func() time.Time {
		return time.Date(2024, 5, 9, 9, 0, 0, 0, time.Local)
	})
	res := reminders.SendDeliveryReminders(ctx)
	assert.Equal(t, 1, res.Reminded)
	assert.Equal(t, 0, res.DigestSent)

	got, err := e.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Ali Khan, collect "+o.ID+" tomorrow, bring 2000", got.Messages[0].English)
	assert.Equal(t, "Ali Khan کل تشریف لائیں", got.Messages[0].Urdu)
}

func TestStartSchedulerRejectsBadSpec(t *testing.T) {
	e := newEnv(t, services.Channels{})
	reminders := services.NewReminderService(e.store, e.store, e.store, e.orders, e.notifier, zaptest.NewLogger(t))
	assert.Error(t, reminders.StartScheduler("every day"))

	require.NoError(t, reminders.StartScheduler(""))
	reminders.Stop()
}

func TestAccountChannels(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	_, err := e.store.CreateUser(ctx, models.User{Email: "a@x", SMSNotifications: true})
	require.NoError(t, err)
	_, err = e.store.CreateUser(ctx, models.User{Email: "b@x", WhatsAppNotifications: true})
	require.NoError(t, err)

	ch, err := services.AccountChannels{Users: e.store}.Channels(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.Channels{SMS: true, WhatsApp: true}, ch)
}
