package handler

import (
	"log/slog"
	"net/http"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-account handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCustomers returns every customer record.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		views = append(views, newCustomerResponse(customer))
	}

	return response.Success(c, http.StatusOK, views, "Customers retrieved successfully")
}

// GetCustomer returns one customer by ID.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Customer retrieved successfully")
}

// UpdateCustomer applies a partial update to the authenticated customer.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.UpdateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if input == nil {
		input = &usecase.UpdateCustomerInput{}
	}
	input.CustomerID = customerID

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Customer updated successfully")
}

// DeleteCustomer removes the authenticated customer's account.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Customer deleted successfully")
}
