package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for the customer address handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses handles GET /customers/:customerId/addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponses(addresses))
}

// GetAddress handles GET /customers/:customerId/addresses/:id
func (h *AddressHandler) GetAddress(c echo.Context) error {
	customerID, id, err := addressPathIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), customerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// CreateAddress handles POST /customers/:customerId/addresses
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindBody[AddressRequest](c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), customerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressResponse(address))
}

// UpdateAddress handles PUT /customers/:customerId/addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	customerID, id, err := addressPathIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, err := bindBody[UpdateAddressRequest](c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.UpdateAddress(c.Request().Context(), customerID, id, req.toInput()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeleteAddress handles DELETE /customers/:customerId/addresses/:id
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	customerID, id, err := addressPathIDs(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), customerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func addressPathIDs(c echo.Context) (customerID, id int64, err error) {
	if customerID, err = pathID(c, "customerId"); err != nil {
		return 0, 0, err
	}
	if id, err = pathID(c, "id"); err != nil {
		return 0, 0, err
	}

	return customerID, id, nil
}
