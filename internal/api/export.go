package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"stayflow/internal/boards"
	"stayflow/pkg/domain"
)

var reservationExportHeader = []string{
	"ID",
	"Guest Name",
	"Guest Email",
	"Guest Phone",
	"Room ID",
	"Check-in",
	"Check-out",
	"Status",
	"Total Amount",
	"Notes",
}

// export streams the reservation board as an xlsx workbook. The same search,
// status, and window filters as the list endpoint apply.
func (h *reservationHandler) export(c echo.Context) error {
	all := h.svc.Reservations(c.Request().Context())
	filtered := boards.SearchReservations(all, c.QueryParam("search"))
	filtered = boards.FilterReservationsByStatus(filtered, c.QueryParam("status"))

	data, err := generateReservationExport(boards.SortReservations(filtered))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="reservations.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func generateReservationExport(items []domain.Reservation) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Reservations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, title := range reservationExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, r := range items {
		values := []any{
			r.ID,
			r.GuestName,
			r.GuestEmail,
			r.GuestPhone,
			strconv.Itoa(r.RoomID),
			r.CheckIn.String(),
			r.CheckOut.String(),
			string(r.Status),
			r.TotalAmount,
			r.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
