package consentSubmissions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultExportRetryCronSpec  = "@every 5m"
	defaultExportRetryBatchSize = 50
	defaultExportRetryLockTTL   = 2 * time.Minute
)

// Worker periodically retries failed consent exports. Only the instance that
// holds the leader lock runs a batch.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	usecase contracts.ConsentSubmissionUsecase
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, usecase contracts.ConsentSubmissionUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, usecase: usecase, stop: make(chan struct{})}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.ConsentForm.ExportRetryCronSpec
	if spec == "" {
		spec = defaultExportRetryCronSpec
	}
	_, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("consentSubmissions.Worker invalid cron spec; falling back to default",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultExportRetryCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the running job to return.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
		return
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, runID)

	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.ConsentExportRetryLockKey, ttl)
	if err != nil {
		w.log.Warn("consentSubmissions.Worker leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("consentSubmissions.Worker leader lock held by another instance")
		return
	}
	defer func() {
		// the run context may be cancelled by now
		unlockErr := w.locker.Unlock(context.Background(), constvars.ConsentExportRetryLockKey, token)
		if unlockErr != nil {
			w.log.Warn("consentSubmissions.Worker failed to release leader lock", zap.Error(unlockErr))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLock(refreshCtx, token, ttl)

	batchSize := w.cfg.ConsentForm.ExportRetryBatchSize
	if batchSize <= 0 {
		batchSize = defaultExportRetryBatchSize
	}
	var exported int
	err = utils.LogOperation(w.log, "consentSubmissions.Worker.RetryFailedExports", runID, func() error {
		var retryErr error
		exported, retryErr = w.usecase.RetryFailedExports(ctx, batchSize)
		return retryErr
	})
	if err != nil {
		return
	}
	w.log.Info("consentSubmissions.Worker retry batch finished",
		zap.String(constvars.LoggingRequestIDKey, runID),
		zap.Int(constvars.LoggingBatchSizeKey, batchSize),
		zap.Int(constvars.LoggingExportedCountKey, exported),
	)
}

func (w *Worker) refreshLock(ctx context.Context, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			err := w.locker.Refresh(ctx, constvars.ConsentExportRetryLockKey, token, ttl)
			if err != nil {
				w.log.Warn("consentSubmissions.Worker failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}

func (w *Worker) lockTTL() time.Duration {
	if minutes := w.cfg.ConsentForm.ExportRetryLockTTLInMinute; minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return defaultExportRetryLockTTL
}
