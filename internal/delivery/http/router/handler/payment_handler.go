package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment line-item handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPayments returns line items, optionally scoped by ?reservation_id=.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	if raw := c.QueryParam("reservation_id"); raw != "" {
		reservationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation_id")
		}

		items, err := h.uc.ListByReservation(c.Request().Context(), reservationID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, items, "Payments retrieved successfully")
	}

	items, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Payments retrieved successfully")
}

// InsertPayments stores a batch of line items for one reservation.
func (h *PaymentHandler) InsertPayments(c echo.Context) error {
	var input *usecase.InsertPaymentsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Request body is required")
	}

	items, err := h.uc.InsertPayments(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, items, "Payments recorded successfully")
}
