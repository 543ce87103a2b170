package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorMessageKey       = "error_message"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingConsentFormIDKey      = "consent_form_id"
	LoggingSubmissionIDKey       = "submission_id"
	LoggingFieldCountKey         = "field_count"
	LoggingViolationFieldsKey    = "violation_fields"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingQueueNameKey          = "queue_name"
	LoggingExportStatusKey       = "export_status"
	LoggingBatchSizeKey          = "batch_size"
	LoggingExportedCountKey      = "exported_count"
	LoggingCronSpecKey           = "cron_spec"
)
