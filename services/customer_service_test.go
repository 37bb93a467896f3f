package services_test

import (
	"context"
	"testing"

	"digitaltailor-backend/models"
	"digitaltailor-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	signals, cancel := e.hub.Subscribe()
	defer cancel()

	c, err := e.customers.Register(ctx, services.CustomerInput{
		Name: " Ali Khan ", FatherName: "Akbar", MobileNumber: "03001234567",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Ali Khan", c.Name)
	assert.Equal(t, models.DefaultProfilePicture, c.Picture())
	waitSignal(t, signals)

	_, err = e.customers.Register(ctx, services.CustomerInput{Name: "Other", MobileNumber: "03001234567"})
	assert.ErrorIs(t, err, services.ErrCustomerExists)
}

func TestRegisterComparesMobileWithoutSeparators(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})

	c, err := e.customers.Register(ctx, services.CustomerInput{Name: "Ali", MobileNumber: "0300-1234567"})
	require.NoError(t, err)
	assert.Equal(t, "03001234567", c.MobileNumber)

	_, err = e.customers.Register(ctx, services.CustomerInput{Name: "Twin", MobileNumber: "03001234567"})
	assert.ErrorIs(t, err, services.ErrCustomerExists)
	_, err = e.customers.Register(ctx, services.CustomerInput{Name: "Twin", MobileNumber: "0300 123 4567"})
	assert.ErrorIs(t, err, services.ErrCustomerExists)

	got, err := e.customers.LoginByMobile(ctx, "0300-1234567")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestLoginByMobile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	c, err := e.customers.Register(ctx, services.CustomerInput{Name: "Ali", MobileNumber: "03001234567"})
	require.NoError(t, err)

	got, err := e.customers.LoginByMobile(ctx, "  03001234567 ")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = e.customers.LoginByMobile(ctx, "0300")
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	a, err := e.customers.Register(ctx, services.CustomerInput{Name: "Ali", MobileNumber: "03001111111"})
	require.NoError(t, err)
	_, err = e.customers.Register(ctx, services.CustomerInput{Name: "Bilal", MobileNumber: "03002222222"})
	require.NoError(t, err)

	_, err = e.customers.Update(ctx, a.ID, services.CustomerInput{Name: "Ali", MobileNumber: "03002222222"})
	assert.ErrorIs(t, err, services.ErrCustomerExists)

	updated, err := e.customers.Update(ctx, a.ID, services.CustomerInput{
		Name: "Ali Raza", Address: "Lahore", MobileNumber: "03001111111",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ali Raza", updated.Name)

	got, err := e.customers.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lahore", got.Address)

	_, err = e.customers.Update(ctx, "missing", services.CustomerInput{Name: "x"})
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestListCustomersFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	for _, in := range []services.CustomerInput{
		{Name: "Ali", MobileNumber: "03001111111"},
		{Name: "Bilal", MobileNumber: "03002222222"},
	} {
		_, err := e.customers.Register(ctx, in)
		require.NoError(t, err)
	}

	all, err := e.customers.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := e.customers.List(ctx, "2222")
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "Bilal", some[0].Name)
}

func TestSetProfilePicture(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, services.Channels{})
	c, err := e.customers.Register(ctx, services.CustomerInput{Name: "Ali", MobileNumber: "03001111111"})
	require.NoError(t, err)

	_, err = e.customers.SetProfilePicture(ctx, c.ID, " ")
	assert.ErrorIs(t, err, services.ErrEmptyImage)

	for _, ref := range []string{"data:image/png;base64,AAA", "https://img/2.png"} {
		_, err = e.customers.SetProfilePicture(ctx, c.ID, ref)
		require.NoError(t, err)
	}
	got, err := e.customers.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://img/2.png", got.Picture())

	_, err = e.customers.SetProfilePicture(ctx, "missing", "x")
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}
