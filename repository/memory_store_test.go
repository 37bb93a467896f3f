package repository_test

import (
	"context"
	"testing"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	o, err := store.CreateOrder(ctx, models.NewOrder("c1", models.Measurements{},
		models.DerivePayment(decimal.NewFromInt(100), decimal.Zero), time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.UpdateOrderPhotos(ctx, o.ID, []string{"p1"}))

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	orders[0].Photos[0] = "tampered"
	orders[0].Status = models.StatusDelivered

	got, err := store.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, got.Photos)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	assert.ErrorIs(t, store.UpdateOrderStatus(ctx, "nope", models.StatusReady), repository.ErrNotFound)
	assert.ErrorIs(t, store.SetCustomerProfilePicture(ctx, "nope", "x"), repository.ErrNotFound)
	_, err := store.FindCustomerByMobile(ctx, "0300")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStoreTemplateKeyIsUnique(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := store.CreateTemplate(ctx, models.MessageTemplate{Key: "k"})
	require.NoError(t, err)
	_, err = store.CreateTemplate(ctx, models.MessageTemplate{Key: "k"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}
