package config

import (
	"github.com/joho/godotenv"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			TrustedProxies:             utils.ParseTrustedProxies(utils.GetEnvStringSlice("APP_TRUSTED_PROXIES", []string{})),
		},
		Minio: AppMinio{
			SignatureBucketName: utils.GetEnvString("MINIO_SIGNATURE_BUCKET_NAME", "consent-signatures"),
			ExportBucketName:    utils.GetEnvString("MINIO_EXPORT_BUCKET_NAME", "consent-exports"),
		},
		RabbitMQ: AppRabbitMQ{
			ExportQueue: utils.GetEnvString("RABBITMQ_EXPORT_QUEUE", "consent_exports"),
		},
		MongoDB: AppMongoDB{
			DBName: utils.GetEnvString("MONGODB_DB_NAME", "imec_formularios"),
		},
		ConsentForm: AppConsentForm{
			RejectUnknownFields:        utils.GetEnvBool("CONSENT_REJECT_UNKNOWN_FIELDS", false),
			SchemaCacheTTLInMinutes:    utils.GetEnvInt("CONSENT_SCHEMA_CACHE_TTL_IN_MINUTES", 60),
			ExportRetryCronSpec:        utils.GetEnvString("CONSENT_EXPORT_RETRY_CRON_SPEC", "@every 5m"),
			ExportRetryBatchSize:       utils.GetEnvInt("CONSENT_EXPORT_RETRY_BATCH_SIZE", 50),
			ExportTimeoutInSeconds:     utils.GetEnvInt("CONSENT_EXPORT_TIMEOUT_IN_SECONDS", 10),
			ExportRetryLockTTLInMinute: utils.GetEnvInt("CONSENT_EXPORT_RETRY_LOCK_TTL_IN_MINUTE", 2),
		},
	}
}

// UnknownFieldPolicy maps the configuration switch onto the validator policy.
func (c AppConsentForm) UnknownFieldPolicy() formschema.UnknownFieldPolicy {
	if c.RejectUnknownFields {
		return formschema.UnknownFieldsReject
	}
	return formschema.UnknownFieldsPermit
}

// BaseFields are the identity fields of requests.SubmitConsent. They are
// validated by its struct tags, so they are not configurable.
func (c AppConsentForm) BaseFields() formschema.BaseFieldSet {
	return formschema.NewBaseFieldSet(formschema.DefaultBaseFieldIDs...)
}
