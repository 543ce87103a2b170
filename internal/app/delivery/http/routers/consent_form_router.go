package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/controllers"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/middlewares"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

func attachConsentFormRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	consentFormController *controllers.ConsentFormController,
	consentSubmissionController *controllers.ConsentSubmissionController,
) {
	formIDPath := fmt.Sprintf("/{%s}", constvars.URLParamConsentFormID)

	router.Get("/", consentFormController.FindAllConsentForms)
	router.Get(formIDPath, consentFormController.FindConsentFormByID)
	router.Get(formIDPath+"/schema", consentFormController.GetConsentFormSchema)
	router.Post(formIDPath+"/submissions", consentSubmissionController.SubmitConsent)

	router.Group(func(admin chi.Router) {
		admin.Use(middlewares.RequireSuperadminAPIKey)
		admin.Post("/", consentFormController.CreateConsentForm)
		admin.Put(formIDPath, consentFormController.UpdateConsentForm)
		admin.Delete(formIDPath, consentFormController.DeleteConsentFormByID)
		admin.Get(formIDPath+"/submissions", consentSubmissionController.FindSubmissionsByForm)
	})
}
