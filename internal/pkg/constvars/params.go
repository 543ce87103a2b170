package constvars

const (
	URLParamConsentFormID = "form_id"
	URLParamSubmissionID  = "submission_id"
)
