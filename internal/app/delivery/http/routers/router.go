package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/controllers"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/middlewares"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	consentFormController *controllers.ConsentFormController,
	consentSubmissionController *controllers.ConsentSubmissionController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/consent-forms", func(r chi.Router) {
				attachConsentFormRoutes(r, middlewares, consentFormController, consentSubmissionController)
			})

			r.Route("/consent-submissions", func(r chi.Router) {
				attachConsentSubmissionRoutes(r, middlewares, consentSubmissionController)
			})
		})
	})
}
