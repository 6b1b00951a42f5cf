package repository_test

import (
	"context"
	"testing"

	"cinema_reservation/model"
	"cinema_reservation/repository"
	"cinema_reservation/testutil"
	"cinema_reservation/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := repository.New[model.Customer, *model.Customer](db)

	customer := &model.Customer{FullName: "Lina Haddad", Phone: utils.Ptr("+971501234567")}
	require.NoError(t, customers.Add(ctx, customer))
	require.NotZero(t, customer.ID)

	loaded, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lina Haddad", loaded.FullName)

	loaded.FullName = "Lina H. Haddad"
	require.NoError(t, customers.Update(ctx, loaded))
	assert.Equal(t, uint(1), loaded.Version)

	found, err := customers.Delete(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = customers.Delete(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = customers.GetByID(ctx, customer.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddDuplicateTranslatesConstraint(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := repository.New[model.Customer, *model.Customer](db)

	require.NoError(t, customers.Add(ctx, &model.Customer{FullName: "A", Phone: utils.Ptr("+971501234567")}))
	err := customers.Add(ctx, &model.Customer{FullName: "B", Phone: utils.Ptr("+971501234567")})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
}

// A write staged in the unit of work must be visible to its own
// transactional reads but invisible to the snapshot view.
func TestSnapshotIsolation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	uow, err := repository.Begin(ctx, db)
	require.NoError(t, err)
	defer uow.Rollback()

	phone := utils.Ptr("+971509876543")
	require.NoError(t, uow.Customers.Add(ctx, &model.Customer{FullName: "Staged", Phone: phone}))

	staged, err := uow.Customers.Any(ctx, "phone = ?", *phone)
	require.NoError(t, err)
	assert.True(t, staged, "transactional read should see the staged row")

	committed, err := uow.Customers.Snapshot().Any(ctx, "phone = ?", *phone)
	require.NoError(t, err)
	assert.False(t, committed, "snapshot read should only see committed state")

	uow.Rollback()

	after, err := repository.New[model.Customer, *model.Customer](db).Any(ctx, "phone = ?", *phone)
	require.NoError(t, err)
	assert.False(t, after, "rolled back row must not persist")
}

func TestUpdateVersionConflict(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := repository.New[model.Customer, *model.Customer](db)

	customer := &model.Customer{FullName: "Original"}
	require.NoError(t, customers.Add(ctx, customer))

	first, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	second, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)

	first.FullName = "First writer"
	require.NoError(t, customers.Update(ctx, first))

	second.FullName = "Second writer"
	err = customers.Update(ctx, second)
	assert.ErrorIs(t, err, repository.ErrConcurrencyConflict)

	// The loser keeps its original version so a retry after re-reading
	// starts from a clean slate.
	assert.Equal(t, uint(0), second.Version)

	current, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "First writer", current.FullName)
}

func TestUpdateAfterConcurrentDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	customers := repository.New[model.Customer, *model.Customer](db)

	customer := &model.Customer{FullName: "Short lived"}
	require.NoError(t, customers.Add(ctx, customer))

	loaded, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)

	found, err := customers.Delete(ctx, customer.ID)
	require.NoError(t, err)
	require.True(t, found)

	loaded.FullName = "Ghost write"
	err = customers.Update(ctx, loaded)
	assert.ErrorIs(t, err, repository.ErrConcurrencyConflict)
}
