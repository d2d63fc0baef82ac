package services

import (
	"fmt"
	"io"

	"hotelhub-backend/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const reservationSheet = "Reservations"

var reservationHeaders = []interface{}{
	"Confirmation Code", "Guest Name", "Guest Email", "Guest Phone", "Room Type",
	"Check-in", "Check-out", "Nights", "Adults", "Children",
	"Total Price", "Currency", "Status", "Payment Status", "Booking Source", "Created At",
}

// ExportService renders tenant data as spreadsheets.
type ExportService struct {
	reservations *ReservationService
}

func NewExportService(reservations *ReservationService) *ExportService {
	return &ExportService{reservations: reservations}
}

// ExportReservations writes an XLSX workbook with one row per reservation.
func (s *ExportService) ExportReservations(tenantID uint, w io.Writer) error {
	reservations, err := s.reservations.ListReservations(tenantID, "")
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.GetLogger().Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", reservationSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(reservationSheet, "A1", &reservationHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(reservationHeaders))
	if err := f.SetCellStyle(reservationSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, r := range reservations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ConfirmationCode, r.GuestName, r.GuestEmail, r.GuestPhone, r.RoomType.Name,
			r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"), r.Nights(), r.Adults, r.Children,
			r.TotalPrice, r.Currency, r.Status, r.PaymentStatus, r.BookingSource,
			r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(reservationSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(reservationSheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
