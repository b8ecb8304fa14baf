package api

import (
	"net/http"

	activityDelivery "reengage-backend/internal/activity/delivery"
	trackingDelivery "reengage-backend/internal/tracking/delivery"
	"reengage-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, activityHandler *activityDelivery.ActivityHandler, trackingHandler *trackingDelivery.TrackingHandler) {
	// Prometheus metrics (no auth required; scraped inside the cluster)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Activity routes (protected)
		activities := api.Group("/activities")
		activities.Use(AuthMiddleware(cfg.JWTSecret))
		{
			activities.GET("", activityHandler.GetActivities)
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/:id", activityHandler.GetActivityByID)
			activities.POST("/:id/reconcile", trackingHandler.TriggerReconcile)
			activities.GET("/:id/tracking", trackingHandler.GetTracking)
		}
	}
}
