package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return defaultRequestTimeout
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// decodeJSONBody reports bodies cut by the size limit apart from malformed ones.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrReadBody(err)
	}
	return exceptions.ErrCannotParseJSON(err)
}
