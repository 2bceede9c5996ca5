package routers

import (
	"ehr-client/internal/app/config"
	"ehr-client/internal/app/delivery/http/controllers"
	"ehr-client/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	patientFormController *controllers.PatientFormController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.LoadSession)

	router.Get("/", healthController.Root)
	router.Get("/health", healthController.Health)

	attachAuthRoutes(router, middlewares, loginLimiter, authController)

	router.Route("/client/patient", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	router.Route("/patients", func(r chi.Router) {
		attachPatientFormRoutes(r, middlewares, patientFormController)
	})
}
