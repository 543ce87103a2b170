package consentForms

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts/mocks"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		ConsentForm: config.AppConsentForm{
			SchemaCacheTTLInMinutes: 30,
		},
	}
}

func sampleQuestions() []formschema.Question {
	return []formschema.Question{
		{
			ID:   "hasAllergy",
			Type: formschema.QuestionTypeSingleChoice,
			ConditionalBranches: []formschema.Branch{
				{Trigger: "sim", Questions: []formschema.Question{{ID: "allergies", Type: formschema.QuestionTypeMultiChoice}}},
			},
		},
		{ID: "cpf", Type: formschema.QuestionTypeShortText},
	}
}

func storedForm() *models.ConsentForm {
	form := &models.ConsentForm{
		ID:        primitive.NewObjectID(),
		Title:     "Termo de consentimento",
		Questions: sampleQuestions(),
	}
	form.CreatedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	form.UpdatedAt = form.CreatedAt
	return form
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestConsentFormUsecase_CreateConsentForm(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Form", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		repo.On("CreateConsentForm", ctx, mock.AnythingOfType("*models.ConsentForm")).Return("form-1", nil)

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		response, err := uc.CreateConsentForm(ctx, &requests.CreateConsentForm{
			Title:     "Termo",
			Questions: sampleQuestions(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Termo", response.Title)
		assert.Len(t, response.Questions, 2)
		assert.False(t, response.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Nil Questions Become Empty", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		var stored *models.ConsentForm
		repo.On("CreateConsentForm", ctx, mock.AnythingOfType("*models.ConsentForm")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.ConsentForm) }).
			Return("form-1", nil)

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.CreateConsentForm(ctx, &requests.CreateConsentForm{Title: "Vazio"})

		require.NoError(t, err)
		assert.NotNil(t, stored.Questions)
		assert.Empty(t, stored.Questions)
	})

	t.Run("Rejects Duplicate IDs", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		questions := sampleQuestions()
		questions[0].ConditionalBranches[0].Questions = append(questions[0].ConditionalBranches[0].Questions,
			formschema.Question{ID: "hasAllergy", Type: formschema.QuestionTypeShortText})

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.CreateConsentForm(ctx, &requests.CreateConsentForm{Title: "Termo", Questions: questions})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCodeOf(t, err))
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.Details, "hasAllergy")
		repo.AssertNotCalled(t, "CreateConsentForm", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Empty Nested ID", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		questions := sampleQuestions()
		questions[0].ConditionalBranches[0].Questions[0].ID = ""

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.CreateConsentForm(ctx, &requests.CreateConsentForm{Title: "Termo", Questions: questions})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCodeOf(t, err))
	})
}

func TestConsentFormUsecase_UpdateConsentForm(t *testing.T) {
	ctx := context.Background()

	t.Run("Bumps Revision And Evicts Old Schema", func(t *testing.T) {
		form := storedForm()
		// a revision far in the future forces the strictly-increasing fallback
		form.UpdatedAt = time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
		previous := form.UpdatedAt
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		repo.On("UpdateConsentForm", ctx, form).Return(nil)
		redisRepo.On("Delete", ctx, utils.GenerateConsentFormSchemaCacheKey(formID, previous.UnixNano())).Return(nil)

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.UpdateConsentForm(ctx, &requests.UpdateConsentForm{
			FormID:    formID,
			Title:     "Novo título",
			Questions: sampleQuestions()[:1],
		})

		require.NoError(t, err)
		assert.Equal(t, "Novo título", response.Title)
		assert.Len(t, response.Questions, 1)
		assert.True(t, response.UpdatedAt.After(previous))
		redisRepo.AssertExpectations(t)
	})

	t.Run("Cache Eviction Failure Is Not Fatal", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		repo.On("UpdateConsentForm", ctx, form).Return(nil)
		redisRepo.On("Delete", ctx, mock.Anything).Return(errors.New("redis down"))

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		_, err := uc.UpdateConsentForm(ctx, &requests.UpdateConsentForm{FormID: formID, Title: "Termo"})

		assert.NoError(t, err)
	})

	t.Run("Unknown Form", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		repo.On("FindByID", ctx, "missing").Return(nil, nil)

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.UpdateConsentForm(ctx, &requests.UpdateConsentForm{FormID: "missing", Title: "Termo"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestConsentFormUsecase_FindAllConsentForms(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ConsentFormRepository)
	repo.On("FindAll", ctx).Return([]models.ConsentForm{*storedForm(), *storedForm()}, nil)

	uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
	forms, err := uc.FindAllConsentForms(ctx)

	require.NoError(t, err)
	assert.Len(t, forms, 2)
	assert.NotEqual(t, forms[0].FormID, forms[1].FormID)
}

func TestConsentFormUsecase_DeleteConsentFormByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes And Evicts", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		repo.On("DeleteByID", ctx, formID).Return(true, nil)
		redisRepo.On("Delete", ctx, utils.GenerateConsentFormSchemaCacheKey(formID, form.UpdatedAt.UnixNano())).Return(nil)

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		err := uc.DeleteConsentFormByID(ctx, formID)

		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Lost Race Is Not Found", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		repo.On("DeleteByID", ctx, formID).Return(false, nil)

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		err := uc.DeleteConsentFormByID(ctx, formID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestConsentFormUsecase_GetConsentFormSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("Derives And Caches On Miss", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()
		cacheKey := utils.GenerateConsentFormSchemaCacheKey(formID, form.UpdatedAt.UnixNano())

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		redisRepo.On("Get", ctx, cacheKey).Return("", nil)
		redisRepo.On("Set", ctx, cacheKey, mock.AnythingOfType("formschema.Schema"), 30*time.Minute).Return(nil)

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.GetConsentFormSchema(ctx, formID)

		require.NoError(t, err)
		assert.Equal(t, formID, response.FormID)
		assert.Equal(t, []string{"birthDate", "cpf", "patientName"}, response.BaseFields)
		assert.Equal(t, []string{"allergies", "hasAllergy"}, response.Fields.FieldIDs())
		redisRepo.AssertExpectations(t)
	})

	t.Run("Serves Cached Schema", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()
		cacheKey := utils.GenerateConsentFormSchemaCacheKey(formID, form.UpdatedAt.UnixNano())

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		redisRepo.On("Get", ctx, cacheKey).Return(`{"cached":{"kind":"text","optional":true}}`, nil)

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.GetConsentFormSchema(ctx, formID)

		require.NoError(t, err)
		assert.Equal(t, []string{"cached"}, response.Fields.FieldIDs())
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache Outage Falls Back To Derivation", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		redisRepo.On("Get", ctx, mock.Anything).Return("", errors.New("connection refused"))
		redisRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.GetConsentFormSchema(ctx, formID)

		require.NoError(t, err)
		assert.Equal(t, 2, response.Fields.Len())
	})

	t.Run("Corrupt Cache Entry Is Ignored", func(t *testing.T) {
		form := storedForm()
		formID := form.ID.Hex()

		repo := new(mocks.ConsentFormRepository)
		redisRepo := new(mocks.RedisRepository)
		repo.On("FindByID", ctx, formID).Return(form, nil)
		redisRepo.On("Get", ctx, mock.Anything).Return("{not json", nil)
		redisRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := NewConsentFormUsecase(repo, redisRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.GetConsentFormSchema(ctx, formID)

		require.NoError(t, err)
		assert.True(t, response.Fields.Has("allergies"))
	})

	t.Run("Unknown Form", func(t *testing.T) {
		repo := new(mocks.ConsentFormRepository)
		repo.On("FindByID", ctx, "missing").Return(nil, nil)

		uc := NewConsentFormUsecase(repo, new(mocks.RedisRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.GetConsentFormSchema(ctx, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusCodeOf(t, err))
	})
}
