package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/fiadopay/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	gateway := a.Router.Group("/fiadopay/gateway/payments")
	gateway.POST("", h.CreatePayment)
	gateway.GET("/:id", h.GetPayment)
	gateway.POST("/:id/refund", h.Refund)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
