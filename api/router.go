package api

import (
	_ "embed"
	"net/http"

	"github.com/Domenick1991/seatbook/internal/service/booking"
	"github.com/Domenick1991/seatbook/internal/service/flights"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPIDoc []byte

type RouterConfig struct {
	DocsEnabled bool
}

func NewRouter(cfg RouterConfig, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	// Route on the escaped path so %2F inside a flight id or passenger name
	// stays within its segment; params are unescaped afterwards.
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(gin.Logger(), gin.Recovery())

	flightsGroup := router.Group("/flights")
	NewFlightHandler(flightSvc).Register(flightsGroup)
	NewBookingHandler(bookingSvc).Register(flightsGroup.Group("/:id"))

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDoc)
	})

	if cfg.DocsEnabled {
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))
	}

	return router
}
