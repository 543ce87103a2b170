package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/controllers"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/middlewares"
	"github.com/kralluz/imec-formularios-app/internal/app/delivery/http/routers"
	"github.com/kralluz/imec-formularios-app/internal/app/drivers/database"
	"github.com/kralluz/imec-formularios-app/internal/app/drivers/logger"
	"github.com/kralluz/imec-formularios-app/internal/app/drivers/messaging"
	"github.com/kralluz/imec-formularios-app/internal/app/drivers/storage"
	consentForms "github.com/kralluz/imec-formularios-app/internal/app/services/core/consent_forms"
	consentSubmissions "github.com/kralluz/imec-formularios-app/internal/app/services/core/consent_submissions"
	"github.com/kralluz/imec-formularios-app/internal/app/services/shared/exporter"
	"github.com/kralluz/imec-formularios-app/internal/app/services/shared/locker"
	"github.com/kralluz/imec-formularios-app/internal/app/services/shared/publisher"
	"github.com/kralluz/imec-formularios-app/internal/app/services/shared/redis"
	minioStorage "github.com/kralluz/imec-formularios-app/internal/app/services/shared/storage"
	"go.uber.org/zap"
)

// Version and Tag are set at build time through -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting consent forms service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	for _, bucketName := range []string{
		bootstrap.InternalConfig.Minio.SignatureBucketName,
		bootstrap.InternalConfig.Minio.ExportBucketName,
	} {
		err := objectStorage.EnsureBucket(ctx, bucketName)
		if err != nil {
			return err
		}
	}

	messagePublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.ExportQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	bootstrap.Publisher = messagePublisher
	consentExporter := exporter.NewConsentExporter(objectStorage, messagePublisher, bootstrap.InternalConfig.Minio.ExportBucketName, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Consent forms
	consentFormMongoRepository := consentForms.NewConsentFormMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DBName)
	consentFormUsecase := consentForms.NewConsentFormUsecase(consentFormMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	consentFormController := controllers.NewConsentFormController(bootstrap.Logger, consentFormUsecase, bootstrap.InternalConfig)

	// Consent submissions
	consentSubmissionMongoRepository := consentSubmissions.NewConsentSubmissionMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DBName)
	consentSubmissionUsecase := consentSubmissions.NewConsentSubmissionUsecase(
		consentSubmissionMongoRepository,
		consentFormUsecase,
		objectStorage,
		consentExporter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	consentSubmissionController := controllers.NewConsentSubmissionController(bootstrap.Logger, consentSubmissionUsecase, bootstrap.InternalConfig)

	// Export retry worker
	worker := consentSubmissions.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, consentSubmissionUsecase)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, consentFormController, consentSubmissionController)
	return nil
}
