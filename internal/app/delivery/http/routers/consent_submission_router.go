package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/controllers"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/middlewares"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

func attachConsentSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, consentSubmissionController *controllers.ConsentSubmissionController) {
	router.With(middlewares.RequireSuperadminAPIKey).
		Get(fmt.Sprintf("/{%s}", constvars.URLParamSubmissionID), consentSubmissionController.FindSubmissionByID)
}
