package handler

import (
	"log/slog"
	"net/http"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device-registration and push handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice registers or refreshes the authenticated customer's push token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if input == nil || input.FCMToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "FCM token is required")
	}
	input.CustomerID = customerID

	device, err := h.uc.RegisterDevice(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices returns the authenticated customer's active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// SendPush dispatches a push message to every active device of a customer.
func (h *DeviceHandler) SendPush(c echo.Context) error {
	var input *usecase.SendPushInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Request body is required")
	}

	output, err := h.uc.SendToCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Push dispatched")
}
