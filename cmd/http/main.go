package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/delivery/http/controllers"
	"patient-viewer-service/internal/app/delivery/http/middlewares"
	"patient-viewer-service/internal/app/delivery/http/routers"
	"patient-viewer-service/internal/app/delivery/http/views"
	"patient-viewer-service/internal/app/drivers/logger"
	"patient-viewer-service/internal/app/services/core/patients"
	fhirPatients "patient-viewer-service/internal/app/services/fhir_spark/patients"
	"patient-viewer-service/internal/app/services/shared/viewstate"
	"patient-viewer-service/internal/pkg/metrics"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		Registry:       registry,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening",
			zap.String("port", internalConfig.App.Port),
			zap.String("fhir_base_url", internalConfig.FHIR.BaseUrl),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	appMetrics := metrics.NewMetrics("", bootstrap.Registry)

	// FHIR
	fhirConfig := bootstrap.InternalConfig.FHIR
	patientFhirClient := fhirPatients.NewPatientFhirClient(
		fhirConfig.BaseUrl,
		bootstrap.Logger,
		fhirPatients.WithTimeout(time.Duration(fhirConfig.RequestTimeoutInSeconds)*time.Second),
		fhirPatients.WithRateLimit(fhirConfig.MaxRequestsPerSecond),
		fhirPatients.WithMetrics(appMetrics),
	)

	// Viewer sessions
	sessionStore := viewstate.NewStore(
		patientFhirClient,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.App.SessionTTLInMinutes)*time.Minute,
		bootstrap.InternalConfig.App.DefaultRetrieveCount,
		appMetrics,
	)
	bootstrap.SessionStop = sessionStore.Stop

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, sessionStore, appMetrics)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientFhirClient, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)
	patientViewController := controllers.NewPatientViewController(bootstrap.Logger, renderer, bootstrap.InternalConfig)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.InternalConfig, sessionStore)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Registry,
		middlewares,
		healthController,
		patientController,
		patientViewController,
	)
	return nil
}
