package api

import (
	activityDelivery "reengage-backend/internal/activity/delivery"
	trackingDelivery "reengage-backend/internal/tracking/delivery"
	"reengage-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config          *config.Config
	activityHandler *activityDelivery.ActivityHandler
	trackingHandler *trackingDelivery.TrackingHandler
}

func NewHandler(cfg *config.Config, activityHandler *activityDelivery.ActivityHandler, trackingHandler *trackingDelivery.TrackingHandler) *Handler {
	return &Handler{
		config:          cfg,
		activityHandler: activityHandler,
		trackingHandler: trackingHandler,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	SetupRoutes(r, h.config, h.activityHandler, h.trackingHandler)

	return r.Run(addr)
}
