package http

import (
	"errors"
	"net/http"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/matrix"
	pkgErrors "sppd-activity/pkg/errors"
)

var (
	errIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	errInvalidLimit = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be between 0 and 2500")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, activity.ErrEventNotFound),
		errors.Is(err, activity.ErrSheetNotFound),
		errors.Is(err, matrix.ErrDateColumnNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, matrix.ErrColumnFull),
		errors.Is(err, matrix.ErrSlotTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, matrix.ErrInvalidSlot),
		errors.Is(err, activity.ErrEmptyValue),
		errors.Is(err, activity.ErrInvalidDateRange),
		errors.Is(err, activity.ErrEventUnscheduled):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// errorData exposes the sheet and date of an allocation failure to the client.
func errorData(err error) map[string]interface{} {
	var se *matrix.SlotError
	if !errors.As(err, &se) {
		return nil
	}
	return map[string]interface{}{
		"sheet": se.Sheet,
		"date":  se.Date.Format("2006-01-02"),
	}
}
