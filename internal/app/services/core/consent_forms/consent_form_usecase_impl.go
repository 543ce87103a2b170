package consentForms

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

type consentFormUsecase struct {
	ConsentFormRepository contracts.ConsentFormRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewConsentFormUsecase(
	consentFormRepository contracts.ConsentFormRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsentFormUsecase {
	return &consentFormUsecase{
		ConsentFormRepository: consentFormRepository,
		RedisRepository:       redisRepository,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *consentFormUsecase) CreateConsentForm(ctx context.Context, request *requests.CreateConsentForm) (*responses.ConsentForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentFormUsecase.CreateConsentForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := checkQuestionTree(request.Questions)
	if err != nil {
		uc.Log.Error("consentFormUsecase.CreateConsentForm rejected question tree",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form := &models.ConsentForm{
		Title:       request.Title,
		Description: request.Description,
		Questions:   questionsOrEmpty(request.Questions),
	}
	form.SetCreatedAtUpdatedAt()

	formID, err := uc.ConsentFormRepository.CreateConsentForm(ctx, form)
	if err != nil {
		uc.Log.Error("consentFormUsecase.CreateConsentForm error creating consent form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("consentFormUsecase.CreateConsentForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
	)
	response := form.ConvertIntoResponse()
	return &response, nil
}

func (uc *consentFormUsecase) UpdateConsentForm(ctx context.Context, request *requests.UpdateConsentForm) (*responses.ConsentForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentFormUsecase.UpdateConsentForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
	)

	err := checkQuestionTree(request.Questions)
	if err != nil {
		uc.Log.Error("consentFormUsecase.UpdateConsentForm rejected question tree",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form, err := uc.findConsentForm(ctx, request.FormID)
	if err != nil {
		return nil, err
	}
	previousUpdatedAt := form.UpdatedAt

	form.Title = request.Title
	form.Description = request.Description
	form.Questions = questionsOrEmpty(request.Questions)
	form.SetUpdatedAt()
	if !form.UpdatedAt.After(previousUpdatedAt) {
		// the schema cache key must change with every revision
		form.UpdatedAt = previousUpdatedAt.Add(time.Millisecond)
	}

	err = uc.ConsentFormRepository.UpdateConsentForm(ctx, form)
	if err != nil {
		uc.Log.Error("consentFormUsecase.UpdateConsentForm error updating consent form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.evictSchema(ctx, request.FormID, previousUpdatedAt)

	uc.Log.Info("consentFormUsecase.UpdateConsentForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
	)
	response := form.ConvertIntoResponse()
	return &response, nil
}

func (uc *consentFormUsecase) FindConsentFormByID(ctx context.Context, formID string) (*responses.ConsentForm, error) {
	form, err := uc.findConsentForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	response := form.ConvertIntoResponse()
	return &response, nil
}

func (uc *consentFormUsecase) FindAllConsentForms(ctx context.Context) ([]responses.ConsentForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentFormUsecase.FindAllConsentForms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	forms, err := uc.ConsentFormRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("consentFormUsecase.FindAllConsentForms error fetching consent forms",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ConsentForm, len(forms))
	for i, eachForm := range forms {
		response[i] = eachForm.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *consentFormUsecase) DeleteConsentFormByID(ctx context.Context, formID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentFormUsecase.DeleteConsentFormByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
	)

	form, err := uc.findConsentForm(ctx, formID)
	if err != nil {
		return err
	}

	deleted, err := uc.ConsentFormRepository.DeleteByID(ctx, formID)
	if err != nil {
		uc.Log.Error("consentFormUsecase.DeleteConsentFormByID error deleting consent form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrConsentFormNotFound(nil, formID)
	}
	uc.evictSchema(ctx, formID, form.UpdatedAt)

	uc.Log.Info("consentFormUsecase.DeleteConsentFormByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
	)
	return nil
}

// GetConsentFormSchema derives the answer schema of a stored form. Schemas are
// cached per form revision; any cache failure falls back to deriving again.
func (uc *consentFormUsecase) GetConsentFormSchema(ctx context.Context, formID string) (*responses.ConsentFormSchema, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentFormUsecase.GetConsentFormSchema called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
	)

	form, err := uc.findConsentForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	baseFields := uc.InternalConfig.ConsentForm.BaseFields()
	response := &responses.ConsentFormSchema{
		FormID:     formID,
		BaseFields: baseFields.IDs(),
	}

	cacheKey := utils.GenerateConsentFormSchemaCacheKey(formID, form.UpdatedAt.UnixNano())
	if schema, ok := uc.cachedSchema(ctx, cacheKey); ok {
		response.Fields = schema
		return response, nil
	}

	schema := formschema.Derive(form.Questions, baseFields)
	ttl := time.Duration(uc.InternalConfig.ConsentForm.SchemaCacheTTLInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, schema, ttl)
	if err != nil {
		uc.Log.Warn("consentFormUsecase.GetConsentFormSchema error caching schema in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("consentFormUsecase.GetConsentFormSchema derived schema",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
		zap.Int(constvars.LoggingFieldCountKey, schema.Len()),
	)
	response.Fields = schema
	return response, nil
}

func (uc *consentFormUsecase) cachedSchema(ctx context.Context, cacheKey string) (formschema.Schema, bool) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("consentFormUsecase.cachedSchema error retrieving schema from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return formschema.Schema{}, false
	}
	if cached == "" {
		return formschema.Schema{}, false
	}

	var schema formschema.Schema
	err = json.Unmarshal([]byte(cached), &schema)
	if err != nil {
		uc.Log.Warn("consentFormUsecase.cachedSchema error parsing cached schema",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
		return formschema.Schema{}, false
	}
	return schema, true
}

func (uc *consentFormUsecase) evictSchema(ctx context.Context, formID string, updatedAt time.Time) {
	cacheKey := utils.GenerateConsentFormSchemaCacheKey(formID, updatedAt.UnixNano())
	err := uc.RedisRepository.Delete(ctx, cacheKey)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("consentFormUsecase.evictSchema error deleting cached schema",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
}

func (uc *consentFormUsecase) findConsentForm(ctx context.Context, formID string) (*models.ConsentForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	form, err := uc.ConsentFormRepository.FindByID(ctx, formID)
	if err != nil {
		uc.Log.Error("consentFormUsecase.findConsentForm error fetching consent form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsentFormIDKey, formID),
			zap.Error(err),
		)
		return nil, err
	}
	if form == nil {
		uc.Log.Info("consentFormUsecase.findConsentForm consent form not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsentFormIDKey, formID),
		)
		return nil, exceptions.ErrConsentFormNotFound(nil, formID)
	}
	return form, nil
}

// checkQuestionTree rejects trees whose answers could not be told apart:
// questions without id and ids used more than once.
func checkQuestionTree(questions []formschema.Question) error {
	hasEmptyID := false
	formschema.Walk(questions, func(q formschema.Question, _ int) {
		if q.ID == "" {
			hasEmptyID = true
		}
	})
	if hasEmptyID {
		return exceptions.ErrEmptyQuestionID(nil)
	}

	duplicates := formschema.DuplicateIDs(questions)
	if len(duplicates) > 0 {
		return exceptions.ErrDuplicateQuestionIDs(duplicates)
	}
	return nil
}

func questionsOrEmpty(questions []formschema.Question) []formschema.Question {
	if questions == nil {
		return []formschema.Question{}
	}
	return questions
}
