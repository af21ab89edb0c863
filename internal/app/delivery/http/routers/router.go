package routers

import (
	"fmt"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/delivery/http/controllers"
	"patient-viewer-service/internal/app/delivery/http/middlewares"
	"patient-viewer-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	registry *prometheus.Registry,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	patientController *controllers.PatientController,
	patientViewController *controllers.PatientViewController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", healthController.Check)
	if registry != nil {
		router.Method(constvars.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	router.Group(func(r chi.Router) {
		r.Use(middlewares.ViewerSession)
		attachPatientViewRoutes(r, patientViewController)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})
		})
	})
}
