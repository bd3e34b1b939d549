package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TableHandler holds dependencies for seating-table handlers.
type TableHandler struct {
	uc     usecase.TableUsecase
	logger *slog.Logger
}

// NewTableHandler is the constructor for TableHandler, injected by Fx.
func NewTableHandler(uc usecase.TableUsecase, logger *slog.Logger) *TableHandler {
	return &TableHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListTables returns tables, optionally filtered by ?store_id=.
func (h *TableHandler) ListTables(c echo.Context) error {
	var storeID int64
	if raw := c.QueryParam("store_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid store_id")
		}
		storeID = parsed
	}

	tables, err := h.uc.ListTables(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tables, "Tables retrieved successfully")
}

// GetTable returns one table by ID.
func (h *TableHandler) GetTable(c echo.Context) error {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid table ID")
	}

	table, err := h.uc.GetTable(c.Request().Context(), tableID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "Table retrieved successfully")
}

// CreateTable registers a new seating table.
func (h *TableHandler) CreateTable(c echo.Context) error {
	var input *usecase.CreateTableInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid table input")
	}

	table, err := h.uc.CreateTable(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, table, "Table created successfully")
}

// UpdateTable applies a partial update to a table.
func (h *TableHandler) UpdateTable(c echo.Context) error {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid table ID")
	}

	var input *usecase.UpdateTableInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if input == nil {
		input = &usecase.UpdateTableInput{}
	}
	input.TableID = tableID

	table, err := h.uc.UpdateTable(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, table, "Table updated successfully")
}

// DeleteTable removes a table.
func (h *TableHandler) DeleteTable(c echo.Context) error {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid table ID")
	}

	if err := h.uc.DeleteTable(c.Request().Context(), tableID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Table deleted successfully")
}

// CheckInQR streams the table's check-in QR code as a PNG image.
func (h *TableHandler) CheckInQR(c echo.Context) error {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid table ID")
	}

	png, err := h.uc.CheckInQR(c.Request().Context(), tableID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
