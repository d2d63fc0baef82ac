package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportReservations(t *testing.T) {
	db, hotel, res, _ := newPaymentFixture(t)
	export := NewExportService(NewReservationService(db, nil))

	var buf bytes.Buffer
	require.NoError(t, export.ExportReservations(hotel.ID, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reservations")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Confirmation Code", rows[0][0])
	assert.Equal(t, res.ConfirmationCode, rows[1][0])
	assert.Equal(t, "grace@example.com", rows[1][2])
	assert.Equal(t, "Standard Room", rows[1][4])
	assert.Equal(t, "2030-01-03", rows[1][5])
	assert.Equal(t, "3", rows[1][7])
	assert.Equal(t, "340", rows[1][10])
}

func TestExportReservationsEmptyTenant(t *testing.T) {
	db, _ := seededDB(t)
	other := createHotel(t, db, "other")
	export := NewExportService(NewReservationService(db, nil))

	var buf bytes.Buffer
	require.NoError(t, export.ExportReservations(other.ID, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reservations")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
