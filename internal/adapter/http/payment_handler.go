package http

import (
	"net/http"

	"prestago-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type submitPaymentReq struct {
	Amount             float64 `json:"amount"              validate:"required,gt=0,dec2"`
	Method             string  `json:"method"              validate:"required,oneof=yape bank_deposit"`
	OperationReference string  `json:"operation_reference" validate:"required,numref"`
	ProofImageURL      string  `json:"proof_image_url"     validate:"required,url"`
	Observations       string  `json:"observations"        validate:"max=500"`
}

func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	installmentID := c.Param("installment_id")
	if !reHex32.MatchString(installmentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid installment_id path param"})
	}
	var req submitPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), payment.SubmitInput{
		InstallmentID:      installmentID,
		Amount:             req.Amount,
		Method:             req.Method,
		OperationReference: req.OperationReference,
		ProofImageURL:      req.ProofImageURL,
		Observations:       req.Observations,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) ApprovePayment(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	if err := h.uc.Approve(c.Request().Context(), submissionID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type rejectPaymentReq struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	submissionID := c.Param("submission_id")
	if !reHex32.MatchString(submissionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission_id path param"})
	}
	var req rejectPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.Reject(c.Request().Context(), submissionID, req.Reason); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) GetProofOfPayment(c echo.Context) error {
	clientID, loanID := c.Param("client_id"), c.Param("loan_id")
	if !reHex32.MatchString(clientID) || !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid path params"})
	}
	ref, err := h.uc.ProofOfPayment(c.Request().Context(), clientID, loanID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, ref)
}

func (h *PaymentHandler) GetReceipt(c echo.Context) error {
	installmentID := c.Param("installment_id")
	if !reHex32.MatchString(installmentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid installment_id path param"})
	}
	ref, err := h.uc.Receipt(c.Request().Context(), installmentID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, ref)
}
