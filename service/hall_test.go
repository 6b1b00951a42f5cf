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

func TestCreateHallNameCaseInsensitive(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	halls := service.NewHallService(db)

	_, err := halls.Create(ctx, &model.CreateHallInput{Name: "Main Hall", Capacity: 100})
	require.NoError(t, err)

	_, err = halls.Create(ctx, &model.CreateHallInput{Name: "MAIN HALL", Capacity: 80})
	assert.ErrorIs(t, err, service.ErrHallNameTaken)
}

// Renaming a hall to its own name is not a conflict.
func TestUpdateHallKeepsOwnName(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	halls := service.NewHallService(db)

	created, err := halls.Create(ctx, &model.CreateHallInput{Name: "IMAX", Capacity: 200})
	require.NoError(t, err)

	updated, err := halls.Update(ctx, created.ID, &model.UpdateHallInput{
		Name:     utils.Ptr("imax"),
		Capacity: utils.Ptr(220),
	})
	require.NoError(t, err)
	assert.Equal(t, 220, updated.Capacity)
}

func TestFindHallByNameIgnoresCase(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	halls := service.NewHallService(db)

	created, err := halls.Create(ctx, &model.CreateHallInput{Name: "Screen 3", Capacity: 60})
	require.NoError(t, err)

	found, err := halls.FindByName(ctx, "sCrEeN 3")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

// The (hall, row, number) triple is unique per hall, not globally.
func TestCreateSeatDuplicateSlot(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	halls := service.NewHallService(db)
	seats := service.NewSeatService(db)

	hallA, err := halls.Create(ctx, &model.CreateHallInput{Name: "Hall A", Capacity: 40})
	require.NoError(t, err)
	hallB, err := halls.Create(ctx, &model.CreateHallInput{Name: "Hall B", Capacity: 40})
	require.NoError(t, err)

	_, err = seats.Create(ctx, &model.CreateSeatInput{HallId: hallA.ID, Row: "A", Number: 1})
	require.NoError(t, err)

	_, err = seats.Create(ctx, &model.CreateSeatInput{HallId: hallA.ID, Row: "a", Number: 1})
	assert.ErrorIs(t, err, service.ErrSeatTaken)

	_, err = seats.Create(ctx, &model.CreateSeatInput{HallId: hallB.ID, Row: "A", Number: 1})
	assert.NoError(t, err)
}

func TestListHallSeatsOrdered(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	halls := service.NewHallService(db)
	seats := service.NewSeatService(db)

	hall, err := halls.Create(ctx, &model.CreateHallInput{Name: "Ordered", Capacity: 10})
	require.NoError(t, err)

	for _, spec := range []struct {
		row string
		num int
	}{{"B", 2}, {"A", 2}, {"A", 1}, {"B", 1}} {
		_, err := seats.Create(ctx, &model.CreateSeatInput{HallId: hall.ID, Row: spec.row, Number: spec.num})
		require.NoError(t, err)
	}

	listed, err := halls.ListSeats(ctx, hall.ID)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, "A", listed[0].Row)
	assert.Equal(t, 1, listed[0].Number)
	assert.Equal(t, "B", listed[3].Row)
	assert.Equal(t, 2, listed[3].Number)
}
