package utils

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		fields := []zap.Field{
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String(constvars.LoggingErrorMessageKey, clientMessage),
		}
		if customErr.Location != nil {
			fields = append(fields, zap.Any("location", customErr.Location))
		}
		if len(customErr.Details) > 0 {
			fields = append(fields, zap.Any(constvars.LoggingViolationFieldsKey, customErr.Details))
		}
		if code >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, fields...)
		} else {
			log.Warn(customErr.DevMessage, fields...)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil {
		response.Details = customErr.Details
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}
	json.NewEncoder(w).Encode(response)
}
