package http

import (
	"errors"
	"net/http"
	"strings"

	domainAssignment "prestago-backend/internal/domain/assignment"
	"prestago-backend/internal/domain/directory"
	domainLoan "prestago-backend/internal/domain/loan"
	domainPayment "prestago-backend/internal/domain/payment"
	usecasePayment "prestago-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// errorJSON maps domain errors to the error taxonomy: 400 malformed input,
// 404 absent entity, 409 rejected business rule, 503 transient storage.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainAssignment.ErrClientAlreadyAssigned),
		errors.Is(err, domainAssignment.ErrGuarantorCapacityExceeded),
		errors.Is(err, domainPayment.ErrDuplicateSubmission),
		errors.Is(err, domainPayment.ErrInstallmentNotPayable),
		errors.Is(err, domainPayment.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainAssignment.ErrSameParty),
		errors.Is(err, usecasePayment.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainAssignment.ErrNotFound),
		errors.Is(err, directory.ErrClientNotFound),
		errors.Is(err, directory.ErrGuarantorNotFound),
		errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainLoan.ErrInstallmentNotFound),
		errors.Is(err, domainPayment.ErrSubmissionNotFound),
		errors.Is(err, domainPayment.ErrProofNotAvailable),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable, retry later"})
	}
}

// test helper
func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
