package http

import (
	"net/http"

	"prestago-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

func (h *LedgerHandler) ListPendingInstallments(c echo.Context) error {
	clientID := c.Param("client_id")
	if !reHex32.MatchString(clientID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client_id path param"})
	}
	out, err := h.uc.ListPending(c.Request().Context(), clientID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": out})
}

func (h *LedgerHandler) ListPaidInstallments(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	out, err := h.uc.ListPaid(c.Request().Context(), loanID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"installments": out})
}
