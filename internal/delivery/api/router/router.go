// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AddressHandler  *handler.AddressHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	addressHandler  *handler.AddressHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		addressHandler:  params.AddressHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	customersGroup := e.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.GET("/active", r.customerHandler.ListActiveCustomers)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.PUT("/deactivate/:id", r.customerHandler.DeactivateCustomer)
		customersGroup.PUT("/activate/:id", r.customerHandler.ActivateCustomer)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	addressesGroup := customersGroup.Group("/:customerId/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}
