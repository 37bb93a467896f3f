package models_test

import (
	"testing"
	"time"

	"digitaltailor-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionAnyToAny(t *testing.T) {
	for _, from := range models.OrderStatuses {
		for _, to := range models.OrderStatuses {
			got, err := models.Transition(models.RoleTailor, from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
		}
	}
}

func TestTransitionRejectsCustomer(t *testing.T) {
	got, err := models.Transition(models.RoleCustomer, models.StatusPending, models.StatusReady)
	assert.ErrorIs(t, err, models.ErrForbiddenRole)
	assert.Equal(t, models.StatusPending, got)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	got, err := models.Transition(models.RoleTailor, models.StatusReady, models.OrderStatus("CANCELLED"))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Equal(t, models.StatusReady, got)
}

func TestNewOrderDefaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := models.Measurements{SuitType: models.SuitSherwani, Chest: "40", DeliveryDate: "2024-03-10"}
	p := models.DerivePayment(decimal.NewFromInt(5000), decimal.NewFromInt(5000))

	o := models.NewOrder("cust-1", m, p, now)

	assert.Equal(t, models.StatusPending, o.Status)
	assert.NotNil(t, o.Messages)
	assert.Empty(t, o.Messages)
	assert.NotNil(t, o.Photos)
	assert.Empty(t, o.Photos)
	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, "cust-1", o.CustomerID)
	assert.Equal(t, m, o.Measurements)
	assert.Equal(t, models.PaymentPaid, o.Payment.Status)
}

func TestAppendMessageNewestFirst(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	log1 := models.AppendMessage(nil, "پہلا", "first", t1)
	log2 := models.AppendMessage(log1, "دوسرا", "second", t2)

	require.Len(t, log2, 2)
	assert.Equal(t, "second", log2[0].English)
	assert.Equal(t, "first", log2[1].English)
	assert.Equal(t, "پہلا", log2[1].Urdu)
	assert.Equal(t, t1, log2[1].Timestamp)
	assert.Equal(t, log1[0], log2[1])
	assert.NotEqual(t, log2[0].ID, log2[1].ID)

	require.Len(t, log1, 1, "earlier log must not be modified")
	assert.Equal(t, "first", log1[0].English)
}

func TestAppendMessageAllowsEmptyText(t *testing.T) {
	out := models.AppendMessage([]models.Message{}, "", "", time.Now())
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
}

func TestAppendPhotoChronological(t *testing.T) {
	g1 := models.AppendPhoto(nil, "p1")
	g2 := models.AppendPhoto(g1, "p2")

	assert.Equal(t, []string{"p1", "p2"}, g2)
	assert.Equal(t, []string{"p1"}, g1)
}

func TestAppendPhotoDoesNotAliasInput(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "p1"
	a := models.AppendPhoto(base, "a")
	b := models.AppendPhoto(base, "b")
	assert.Equal(t, []string{"p1", "a"}, a)
	assert.Equal(t, []string{"p1", "b"}, b)
}

func TestSetProfilePictureReplaces(t *testing.T) {
	assert.Equal(t, "new", models.SetProfilePicture("old", "new"))

	c := models.Customer{}
	assert.Equal(t, models.DefaultProfilePicture, c.Picture())
	c.ProfilePicture = models.SetProfilePicture(c.ProfilePicture, "data:image/png;base64,AAA")
	assert.Equal(t, "data:image/png;base64,AAA", c.Picture())
}
