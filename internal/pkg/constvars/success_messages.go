package constvars

const (
	ResponseUnknown = "unknown"

	CreateConsentFormSuccessMessage      = "consent form created successfully"
	UpdateConsentFormSuccessMessage      = "consent form updated successfully"
	DeleteConsentFormSuccessMessage      = "consent form deleted successfully"
	FindConsentFormSuccessMessage        = "get consent form successfully"
	FindAllConsentFormsSuccessMessage    = "get consent forms successfully"
	FindConsentFormSchemaSuccessMessage  = "get consent form schema successfully"
	SubmitConsentSuccessMessage          = "consent submitted successfully"
	SubmitConsentExportPendingMessage    = "consent submitted successfully, export will be retried"
	FindConsentSubmissionSuccessMessage  = "get consent submission successfully"
	FindConsentSubmissionsSuccessMessage = "get consent submissions successfully"
)
