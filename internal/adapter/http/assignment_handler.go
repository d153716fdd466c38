package http

import (
	"net/http"

	"prestago-backend/internal/usecase/assignment"

	"github.com/labstack/echo/v4"
)

type AssignmentHandler struct{ uc *assignment.Usecase }

func NewAssignmentHandler(uc *assignment.Usecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

type createAssignmentReq struct {
	ClientID    string `json:"client_id"    validate:"required,hex32"`
	GuarantorID string `json:"guarantor_id" validate:"required,hex32"`
}

func (h *AssignmentHandler) CreateAssignment(c echo.Context) error {
	var req createAssignmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), assignment.CreateInput(req))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AssignmentHandler) RemoveAssignment(c echo.Context) error {
	assignmentID := c.Param("assignment_id")
	if !reHex32.MatchString(assignmentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assignment_id path param"})
	}
	if err := h.uc.Remove(c.Request().Context(), assignmentID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AssignmentHandler) ListAssignments(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"assignments": out})
}

func (h *AssignmentHandler) CountForGuarantor(c echo.Context) error {
	guarantorID := c.Param("guarantor_id")
	if !reHex32.MatchString(guarantorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid guarantor_id path param"})
	}
	n, err := h.uc.CountForGuarantor(c.Request().Context(), guarantorID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"guarantor_id": guarantorID, "count": n})
}

func (h *AssignmentHandler) HasAssignment(c echo.Context) error {
	clientID := c.Param("client_id")
	if !reHex32.MatchString(clientID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client_id path param"})
	}
	has, err := h.uc.HasAssignment(c.Request().Context(), clientID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"client_id": clientID, "assigned": has})
}
