package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"len":        "must be %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"cpf":        "must be a valid CPF",
	"birth_date": "must be a valid date in the past (DD/MM/YYYY or YYYY-MM-DD)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientRequestBodyTooLarge           = "the request body is too large"
	ErrClientConsentFormNotFound           = "consent form not found"
	ErrClientSubmissionNotFound            = "consent submission not found"
	ErrClientAnswersInvalid                = "some answers are invalid, please review the highlighted fields"
	ErrClientDuplicateQuestionIDs          = "the form definition repeats question ids"
	ErrClientEmptyQuestionID               = "every question must have an id"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevInvalidAPIKey              = "invalid or missing superadmin api key"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevReadBody                   = "cannot read request body"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevConsentFormNotFound        = "consent form %s not found"
	ErrDevSubmissionNotFound         = "consent submission %s not found"
	ErrDevAnswerValidationFailed     = "answer record failed validation on fields: %s"
	ErrDevDuplicateQuestionIDs       = "question tree repeats ids: %s"
	ErrDevEmptyQuestionID            = "question tree has a question without id"
	ErrDevRedisGetNoData             = "failed to get data from redis with key %s"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisExpire                = "failed to refresh redis key expiration"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToCreateBucket  = "failed to ensure bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevInvalidSignatureEncoding   = "signature is not a valid base64 image"
	ErrDevExportConsentSubmission    = "failed to export consent submission %s"
	ErrDevTooManyRequests            = "rate limit exceeded"
)
