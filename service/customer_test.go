package service_test

import (
	"context"
	"testing"

	"cinema_reservation/model"
	"cinema_reservation/service"
	"cinema_reservation/testutil"
	"cinema_reservation/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCanonicalizesContact(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	created, err := customers.Create(ctx, &model.CreateCustomerInput{
		FullName: "  Omar Khalil  ",
		Phone:    "050-123-4567",
		Email:    " Omar.Khalil@Example.COM ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Omar Khalil", created.FullName)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "+971501234567", *created.Phone)
	require.NotNil(t, created.Email)
	assert.Equal(t, "omar.khalil@example.com", *created.Email)
}

// Two spellings of the same number are one contact: the second create
// must fail no matter which spelling it uses.
func TestCreateCustomerDuplicatePhoneSpellings(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	_, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "First", Phone: "0501234567"})
	require.NoError(t, err)

	_, err = customers.Create(ctx, &model.CreateCustomerInput{FullName: "Second", Phone: "971 50 123 4567"})
	assert.ErrorIs(t, err, service.ErrDuplicateContact)
}

func TestCreateCustomerDuplicateEmailCaseInsensitive(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	_, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "First", Email: "Jane@Example.com"})
	require.NoError(t, err)

	_, err = customers.Create(ctx, &model.CreateCustomerInput{FullName: "Second", Email: "jane@example.COM"})
	assert.ErrorIs(t, err, service.ErrDuplicateContact)
}

func TestCreateCustomerInvalidPhone(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	_, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "Nobody", Phone: "12345"})
	assert.ErrorIs(t, err, utils.ErrInvalidPhone)
}

// Updating a customer with their own current contact details is not a
// conflict; only other customers count.
func TestUpdateCustomerSelfExclusion(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	created, err := customers.Create(ctx, &model.CreateCustomerInput{
		FullName: "Mira", Phone: "0501234567", Email: "mira@example.com",
	})
	require.NoError(t, err)

	updated, err := customers.Update(ctx, created.ID, &model.UpdateCustomerInput{
		FullName: utils.Ptr("Mira Saleh"),
		Phone:    utils.Ptr("+971 50 123 4567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mira Saleh", updated.FullName)
	assert.Equal(t, "+971501234567", *updated.Phone)
}

func TestUpdateCustomerStealContactConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	_, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "Holder", Phone: "0501234567"})
	require.NoError(t, err)
	other, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "Other", Phone: "0509876543"})
	require.NoError(t, err)

	_, err = customers.Update(ctx, other.ID, &model.UpdateCustomerInput{Phone: utils.Ptr("0501234567")})
	assert.ErrorIs(t, err, service.ErrDuplicateContact)
}

// Empty string clears a contact field; nil leaves it untouched. Once
// cleared, the old number is free for someone else.
func TestUpdateCustomerClearContact(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	created, err := customers.Create(ctx, &model.CreateCustomerInput{
		FullName: "Clearing", Phone: "0501234567", Email: "clearing@example.com",
	})
	require.NoError(t, err)

	updated, err := customers.Update(ctx, created.ID, &model.UpdateCustomerInput{Phone: utils.Ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Phone)
	require.NotNil(t, updated.Email)

	_, err = customers.Create(ctx, &model.CreateCustomerInput{FullName: "Newcomer", Phone: "0501234567"})
	assert.NoError(t, err)
}

func TestFindCustomerByAnyPhoneSpelling(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := service.NewCustomerService(db)

	created, err := customers.Create(ctx, &model.CreateCustomerInput{FullName: "Lookup", Phone: "0501234567"})
	require.NoError(t, err)

	found, err := customers.FindByPhone(ctx, "971 50 123 4567")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
