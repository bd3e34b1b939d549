// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tablenow/internal/delivery/http/middleware"
	"tablenow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	TableHandler    *handler.TableHandler
	WeatherHandler  *handler.WeatherHandler
	PaymentHandler  *handler.PaymentHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	customerHandler *handler.CustomerHandler
	tableHandler    *handler.TableHandler
	weatherHandler  *handler.WeatherHandler
	paymentHandler  *handler.PaymentHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		customerHandler: params.CustomerHandler,
		tableHandler:    params.TableHandler,
		weatherHandler:  params.WeatherHandler,
		paymentHandler:  params.PaymentHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
	}

	// Account operations that act on the authenticated customer
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/link", r.authHandler.LinkAccount)
		authedAuthGroup.POST("/password/request", r.authHandler.RequestPasswordChange)
		authedAuthGroup.POST("/password/verify", r.authHandler.VerifyCode)
		authedAuthGroup.POST("/password/commit", r.authHandler.CommitPassword)
	}

	// Customer routes; reads are open, mutations act on the caller's account
	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/:id", r.customerHandler.GetCustomer)
	}
	authedCustomerGroup := e.Group("/customers")
	authedCustomerGroup.Use(r.authMiddleware.Authenticate)
	{
		authedCustomerGroup.PATCH("/me", r.customerHandler.UpdateCustomer)
		authedCustomerGroup.DELETE("/me", r.customerHandler.DeleteCustomer)
	}

	// Store seating tables
	tableGroup := e.Group("/tables")
	{
		tableGroup.GET("", r.tableHandler.ListTables)
		tableGroup.GET("/:id", r.tableHandler.GetTable)
		tableGroup.GET("/:id/qr", r.tableHandler.CheckInQR)
		tableGroup.POST("", r.tableHandler.CreateTable)
		tableGroup.PATCH("/:id", r.tableHandler.UpdateTable)
		tableGroup.DELETE("/:id", r.tableHandler.DeleteTable)
	}

	// Daily forecast cache
	weatherGroup := e.Group("/weather")
	{
		weatherGroup.GET("", r.weatherHandler.ListForecasts)
		weatherGroup.GET("/:date", r.weatherHandler.GetForecast)
		weatherGroup.POST("", r.weatherHandler.CreateForecast)
		weatherGroup.POST("/fetch", r.weatherHandler.FetchForecasts)
		weatherGroup.PATCH("/:date", r.weatherHandler.UpdateForecast)
		weatherGroup.DELETE("/:date", r.weatherHandler.DeleteForecast)
	}

	// Payment line items
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.GET("", r.paymentHandler.ListPayments)
		paymentGroup.POST("", r.paymentHandler.InsertPayments)
	}

	// Device registration and push dispatch
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
	}
	e.POST("/push/send", r.deviceHandler.SendPush)
}
