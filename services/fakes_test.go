package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"digitaltailor-backend/repository"
	"digitaltailor-backend/services"

	"go.uber.org/zap/zaptest"
)

type sentText struct {
	Channel, To, Body string
}

type fakeTexts struct {
	mu   sync.Mutex
	sent []sentText
	fail bool
}

func (f *fakeTexts) SendText(_ context.Context, channel, to, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("twilio down")
	}
	f.sent = append(f.sent, sentText{channel, to, body})
	return "SM123", nil
}

type sentMail struct {
	From, To, Subject, Body string
}

type fakeEmail struct {
	sent []sentMail
}

func (f *fakeEmail) Send(_ context.Context, from, to, subject, body string) error {
	f.sent = append(f.sent, sentMail{from, to, subject, body})
	return nil
}

type fixedChannels services.Channels

func (f fixedChannels) Channels(context.Context) (services.Channels, error) {
	return services.Channels(f), nil
}

type env struct {
	store     *repository.MemoryStore
	hub       *services.Hub
	texts     *fakeTexts
	email     *fakeEmail
	notifier  *services.Notifier
	customers *services.CustomerService
	orders    *services.OrderService
}

func newEnv(t *testing.T, ch services.Channels) *env {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := repository.NewMemoryStore()
	hub := services.NewHub()
	texts := &fakeTexts{}
	email := &fakeEmail{}
	notifier := services.NewNotifier(services.NotifierConfig{
		Texts:       texts,
		Email:       email,
		Settings:    fixedChannels(ch),
		Logs:        store,
		Logger:      logger,
		CountryCode: "+92",
		FromEmail:   "shop@example.com",
	})
	return &env{
		store:     store,
		hub:       hub,
		texts:     texts,
		email:     email,
		notifier:  notifier,
		customers: services.NewCustomerService(store, hub, logger),
		orders:    services.NewOrderService(store, notifier, hub, logger),
	}
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}
}
