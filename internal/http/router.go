package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/applicare/backend/internal/booking"
	"github.com/applicare/backend/internal/config"
	"github.com/applicare/backend/internal/directory"
	"github.com/applicare/backend/internal/http/handlers"
	"github.com/applicare/backend/internal/http/middleware"
	"github.com/applicare/backend/internal/store"

	_ "github.com/applicare/backend/docs"
)

func Router(cfg config.Config, svc *booking.Service, st *store.Store, dir *directory.Directory, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Booking:   svc,
		Store:     st,
		Directory: dir,
		Validator: handlers.NewValidator(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/service-issues", h.ServiceIssue)
		api.POST("/installations", h.Installation)
		api.GET("/availability", h.Availability)
		api.POST("/bookings/confirm", h.ConfirmBooking)
		api.POST("/bookings/:ticket_id/reschedule", h.Reschedule)
		api.POST("/bookings/:ticket_id/cancel", h.Cancel)
		api.PATCH("/customers/:id/contact", h.UpdateContact)
		api.PATCH("/customers/:id/address", h.ChangeAddress)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/escalations", h.Escalate)
		admin.GET("/debug/state", h.DebugState)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
