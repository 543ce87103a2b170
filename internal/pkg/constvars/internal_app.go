package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "IMEC_FORM_"
)

const (
	MongoCollectionConsentForms       = "consent_forms"
	MongoCollectionConsentSubmissions = "consent_submissions"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)
