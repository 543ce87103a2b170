package constvars

const (
	ConsentFormSchemaCacheKeyFormat = "consent_form_schema:%s:%d"
	ConsentExportRetryLockKey       = "consent_export_retry:leader"
)

const (
	ExportStatusPending  = "pending"
	ExportStatusExported = "exported"
	ExportStatusFailed   = "failed"
)

const (
	ConsentSubmissionExportedEvent = "consent.submission.exported"
	ConsentSignatureObjectFormat   = "consent-submissions/%s/signature%s"
	ConsentDocumentObjectFormat    = "consent-submissions/%s/document.json"
)

const (
	ConsentHeaderDateFormat      = "%02d de %s de %d"
	ConsentHeaderTimeFormat      = "15:04"
	ConsentHeaderFormattedFormat = "%s às %s"
	ConsentBirthDateLayout       = "02/01/2006"
	ConsentBirthDateISOLayout    = "2006-01-02"
)

var PortugueseMonthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}
