package mocks

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/stretchr/testify/mock"
)

type ConsentFormRepository struct {
	mock.Mock
}

func (m *ConsentFormRepository) CreateConsentForm(ctx context.Context, form *models.ConsentForm) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *ConsentFormRepository) UpdateConsentForm(ctx context.Context, form *models.ConsentForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *ConsentFormRepository) FindByID(ctx context.Context, formID string) (*models.ConsentForm, error) {
	args := m.Called(ctx, formID)
	form, _ := args.Get(0).(*models.ConsentForm)
	return form, args.Error(1)
}

func (m *ConsentFormRepository) FindAll(ctx context.Context) ([]models.ConsentForm, error) {
	args := m.Called(ctx)
	forms, _ := args.Get(0).([]models.ConsentForm)
	return forms, args.Error(1)
}

func (m *ConsentFormRepository) DeleteByID(ctx context.Context, formID string) (bool, error) {
	args := m.Called(ctx, formID)
	return args.Bool(0), args.Error(1)
}

type ConsentFormUsecase struct {
	mock.Mock
}

func (m *ConsentFormUsecase) CreateConsentForm(ctx context.Context, request *requests.CreateConsentForm) (*responses.ConsentForm, error) {
	args := m.Called(ctx, request)
	form, _ := args.Get(0).(*responses.ConsentForm)
	return form, args.Error(1)
}

func (m *ConsentFormUsecase) UpdateConsentForm(ctx context.Context, request *requests.UpdateConsentForm) (*responses.ConsentForm, error) {
	args := m.Called(ctx, request)
	form, _ := args.Get(0).(*responses.ConsentForm)
	return form, args.Error(1)
}

func (m *ConsentFormUsecase) FindConsentFormByID(ctx context.Context, formID string) (*responses.ConsentForm, error) {
	args := m.Called(ctx, formID)
	form, _ := args.Get(0).(*responses.ConsentForm)
	return form, args.Error(1)
}

func (m *ConsentFormUsecase) FindAllConsentForms(ctx context.Context) ([]responses.ConsentForm, error) {
	args := m.Called(ctx)
	forms, _ := args.Get(0).([]responses.ConsentForm)
	return forms, args.Error(1)
}

func (m *ConsentFormUsecase) DeleteConsentFormByID(ctx context.Context, formID string) error {
	args := m.Called(ctx, formID)
	return args.Error(0)
}

func (m *ConsentFormUsecase) GetConsentFormSchema(ctx context.Context, formID string) (*responses.ConsentFormSchema, error) {
	args := m.Called(ctx, formID)
	schema, _ := args.Get(0).(*responses.ConsentFormSchema)
	return schema, args.Error(1)
}
