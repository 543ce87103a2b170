package contracts

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
)

type ConsentFormUsecase interface {
	CreateConsentForm(ctx context.Context, request *requests.CreateConsentForm) (*responses.ConsentForm, error)
	UpdateConsentForm(ctx context.Context, request *requests.UpdateConsentForm) (*responses.ConsentForm, error)
	FindConsentFormByID(ctx context.Context, formID string) (*responses.ConsentForm, error)
	FindAllConsentForms(ctx context.Context) ([]responses.ConsentForm, error)
	DeleteConsentFormByID(ctx context.Context, formID string) error
	GetConsentFormSchema(ctx context.Context, formID string) (*responses.ConsentFormSchema, error)
}

type ConsentFormRepository interface {
	CreateConsentForm(ctx context.Context, form *models.ConsentForm) (formID string, err error)
	UpdateConsentForm(ctx context.Context, form *models.ConsentForm) error
	FindByID(ctx context.Context, formID string) (*models.ConsentForm, error)
	FindAll(ctx context.Context) ([]models.ConsentForm, error)
	DeleteByID(ctx context.Context, formID string) (deleted bool, err error)
}
