package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorBody struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	DevMessage string            `json:"dev_message"`
}

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Answer Violations", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
		violations := formschema.Violations{
			"q2": {Field: "q2", Expected: formschema.RuleKindTextList, Message: formschema.ViolationMessageNotTextList},
		}

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrAnswerValidation(violations))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientAnswersInvalid, body.Message)
		assert.Equal(t, map[string]string{"q2": formschema.ViolationMessageNotTextList}, body.Errors)
		assert.Contains(t, body.DevMessage, "q2")
	})

	t.Run("Production Hides Dev Message", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrConsentFormNotFound(nil, "abc"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientConsentFormNotFound, body.Message)
		assert.Empty(t, body.DevMessage)
	})

	t.Run("Plain Error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
	})
}

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	BuildSuccessResponse(rr, http.StatusCreated, constvars.SubmitConsentSuccessMessage, map[string]string{"submission_id": "s1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"consent submitted successfully","data":{"submission_id":"s1"}}`, rr.Body.String())
}
