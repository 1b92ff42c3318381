package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponses(customers))
}

// ListActiveCustomers handles GET /customers/active
func (h *CustomerHandler) ListActiveCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListActiveCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponses(customers))
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	req, err := bindBody[CreateCustomerRequest](c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer))
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindBody[UpdateCustomerRequest](c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.UpdateCustomer(c.Request().Context(), id, req.toInput()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeactivateCustomer handles PUT /customers/deactivate/:id
func (h *CustomerHandler) DeactivateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.DeactivateCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

// ActivateCustomer handles PUT /customers/activate/:id
func (h *CustomerHandler) ActivateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.ActivateCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
