package responses

import "time"

type ConsentHeader struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	IP        string `json:"ip"`
	Formatted string `json:"formatted"`
	UserAgent string `json:"userAgent,omitempty"`
}

type ConsentSubmission struct {
	SubmissionID       string         `json:"submission_id"`
	FormID             string         `json:"form_id"`
	Header             ConsentHeader  `json:"header"`
	PatientName        string         `json:"patientName"`
	CPF                string         `json:"cpf"`
	RG                 string         `json:"rg,omitempty"`
	BirthDate          string         `json:"birthDate"`
	Responses          map[string]any `json:"responses"`
	SignatureObjectKey string         `json:"signature_object_key,omitempty"`
	DocumentObjectKey  string         `json:"document_object_key,omitempty"`
	ExportStatus       string         `json:"export_status"`
	ExportError        string         `json:"export_error,omitempty"`
	ExportAttempts     int            `json:"export_attempts"`
	CreatedAt          time.Time      `json:"created_at"`
	ExportedAt         *time.Time     `json:"exported_at,omitempty"`
}
