package config

import "github.com/kralluz/imec-formularios-app/internal/pkg/utils"

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	Minio       AppMinio       `mapstructure:"minio"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
	MongoDB     AppMongoDB     `mapstructure:"mongodb"`
	ConsentForm AppConsentForm `mapstructure:"consent_form"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	SuperadminAPIKey           string `mapstructure:"superadmin_api_key"`
	// TrustedProxies may set X-Forwarded-For; everyone else is identified by
	// the connection address
	TrustedProxies utils.TrustedProxies
}

type AppMinio struct {
	SignatureBucketName string `mapstructure:"signature_bucket_name"`
	ExportBucketName    string `mapstructure:"export_bucket_name"`
}

type AppRabbitMQ struct {
	ExportQueue string `mapstructure:"export_queue"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

// AppConsentForm holds the consent form validation and export settings.
type AppConsentForm struct {
	// RejectUnknownFields reports answers to questions the form does not have
	RejectUnknownFields        bool   `mapstructure:"reject_unknown_fields"`
	SchemaCacheTTLInMinutes    int    `mapstructure:"schema_cache_ttl_in_minutes"`
	ExportRetryCronSpec        string `mapstructure:"export_retry_cron_spec"`
	ExportRetryBatchSize       int    `mapstructure:"export_retry_batch_size"`
	ExportTimeoutInSeconds     int    `mapstructure:"export_timeout_in_seconds"`
	ExportRetryLockTTLInMinute int    `mapstructure:"export_retry_lock_ttl_in_minute"`
}
