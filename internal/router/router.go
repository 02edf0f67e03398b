package router

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListDestinations(c *ginext.Context)
	GetDestination(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	Health(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:id", h.GetDestination)

		// Bookings
		api.POST("/book", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/booking/:id", h.GetBooking)

		api.GET("/health", h.Health)
	}

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
