package main

import (
	"context"
	"ehr-client/internal/app/config"
	"ehr-client/internal/app/delivery/http/controllers"
	"ehr-client/internal/app/delivery/http/middlewares"
	"ehr-client/internal/app/delivery/http/routers"
	"ehr-client/internal/app/drivers/database"
	"ehr-client/internal/app/drivers/logger"
	"ehr-client/internal/app/services/core/auth"
	"ehr-client/internal/app/services/core/patients"
	"ehr-client/internal/app/services/core/session"
	"ehr-client/internal/app/services/shared/ehr"
	"ehr-client/internal/app/services/shared/redis"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port), zap.String("ehr_base_url", internalConfig.EHR.BaseUrl))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	ehrBackendClient := ehr.NewEHRBackendClient(
		bootstrap.InternalConfig.EHR.BaseUrl,
		time.Duration(bootstrap.InternalConfig.EHR.RequestTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(ehrBackendClient, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(ehrBackendClient, bootstrap.Logger)

	// Middlewares
	loginLimiter := middlewares.NewRateLimiter(
		bootstrap.Logger,
		bootstrap.InternalConfig.App.LoginMaxAttemptsPerMinute,
		time.Minute/time.Duration(max(bootstrap.InternalConfig.App.LoginMaxAttemptsPerMinute, 1)),
		time.Duration(bootstrap.InternalConfig.App.LoginBlockTimeInMinutes)*time.Minute,
	)
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Controllers
	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, sessionService)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)
	patientFormController := controllers.NewPatientFormController(bootstrap.Logger, patientUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		loginLimiter,
		healthController,
		authController,
		patientController,
		patientFormController,
	)
}
