package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avdeyev/order_crm/internal/handlers"
	"github.com/avdeyev/order_crm/internal/jwtmiddleware"
)

type Deps struct {
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	SearchHandler   *handlers.SearchHandler
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.GET("/search", d.SearchHandler.Search)

	v1.GET("/customers", d.CustomerHandler.GetCustomers)
	v1.GET("/customers/:id", d.CustomerHandler.GetCustomer)
	v1.GET("/products", d.ProductHandler.GetProducts)
	v1.GET("/products/:id", d.ProductHandler.GetProduct)
	v1.GET("/orders", d.OrderHandler.GetOrders)
	v1.GET("/orders/:id", d.OrderHandler.GetOrder)

	auth := v1.Group("", jwtmiddleware.RequireAuth(d.JWTSecret))

	auth.POST("/customers", d.CustomerHandler.CreateCustomer)
	auth.PATCH("/customers/:id", d.CustomerHandler.PatchCustomer)
	auth.DELETE("/customers/:id", d.CustomerHandler.DeleteCustomer)

	auth.POST("/products", d.ProductHandler.CreateProduct)
	auth.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	auth.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	auth.POST("/orders", d.OrderHandler.CreateOrder)
	auth.PATCH("/orders/:id", d.OrderHandler.PatchOrder)
	auth.DELETE("/orders/:id", d.OrderHandler.DeleteOrder)
	auth.POST("/orders/:id/products/:productID", d.OrderHandler.AddProduct)
	auth.DELETE("/orders/:id/products/:productID", d.OrderHandler.RemoveProduct)
}
