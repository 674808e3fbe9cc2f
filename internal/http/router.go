package http

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/config"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/handlers"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every endpoint of the gateway.
func NewRouter(env config.Env, h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(env.CORSAllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/search", h.Search)
		api.POST("/compare", h.Compare)
		api.GET("/locations", h.Locations)
		api.GET("/history", h.History)
		api.POST("/chat", h.Chat)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.StartBooking)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("/:id/traveler", h.ConfirmTraveler)
			bookings.POST("/:id/payment", h.ConfirmPayment)
			bookings.POST("/:id/dismiss", h.DismissBooking)
			bookings.POST("/:id/acknowledge", h.AcknowledgeBooking)
			bookings.POST("/:id/close", h.CloseBooking)
			bookings.GET("/:id/receipt.pdf", h.TicketPDF)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.AdminLogin)

			secured := admin.Group("")
			secured.Use(middleware.AdminAuth(env.JWTSecret))
			{
				secured.POST("/routes", h.AdminAddRoute)
				secured.GET("/history", h.AdminHistory)
				secured.GET("/analytics", h.AdminAnalytics)
			}
		}
	}

	return r
}
