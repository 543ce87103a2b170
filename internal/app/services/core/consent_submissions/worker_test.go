package consentSubmissions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts/mocks"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func workerConfig() *config.InternalConfig {
	return &config.InternalConfig{
		ConsentForm: config.AppConsentForm{
			ExportRetryCronSpec:        "@every 1h",
			ExportRetryBatchSize:       25,
			ExportRetryLockTTLInMinute: 1,
		},
	}
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader Retries Batch And Releases Lock", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(mocks.ConsentSubmissionUsecase)
		locker.On("TryLock", mock.Anything, constvars.ConsentExportRetryLockKey, time.Minute).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.ConsentExportRetryLockKey, "token-1").Return(nil)
		tagged := mock.MatchedBy(func(c context.Context) bool { return utils.GetRequestID(c) != "" })
		usecase.On("RetryFailedExports", tagged, 25).Return(3, nil)

		NewWorker(zap.NewNop(), workerConfig(), locker, usecase).RunOnce(ctx)

		usecase.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("Follower Does Nothing", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(mocks.ConsentSubmissionUsecase)
		locker.On("TryLock", mock.Anything, constvars.ConsentExportRetryLockKey, time.Minute).Return(false, "", nil)

		NewWorker(zap.NewNop(), workerConfig(), locker, usecase).RunOnce(ctx)

		usecase.AssertNotCalled(t, "RetryFailedExports", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Error Skips Run", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(mocks.ConsentSubmissionUsecase)
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", errors.New("redis down"))

		NewWorker(zap.NewNop(), workerConfig(), locker, usecase).RunOnce(ctx)

		usecase.AssertNotCalled(t, "RetryFailedExports", mock.Anything, mock.Anything)
	})

	t.Run("Defaults Apply", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(mocks.ConsentSubmissionUsecase)
		locker.On("TryLock", mock.Anything, constvars.ConsentExportRetryLockKey, defaultExportRetryLockTTL).Return(true, "token-2", nil)
		locker.On("Unlock", mock.Anything, constvars.ConsentExportRetryLockKey, "token-2").Return(nil)
		usecase.On("RetryFailedExports", mock.Anything, defaultExportRetryBatchSize).Return(0, errors.New("mongo down"))

		NewWorker(zap.NewNop(), &config.InternalConfig{}, locker, usecase).RunOnce(ctx)

		usecase.AssertExpectations(t)
		locker.AssertExpectations(t)
	})
}

func TestWorker_StartStop(t *testing.T) {
	w := NewWorker(zap.NewNop(), workerConfig(), new(mocks.LockerService), new(mocks.ConsentSubmissionUsecase))
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
