package models

import (
	"time"

	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
)

type ConsentHeader struct {
	Date      string `json:"date" bson:"date"`
	Time      string `json:"time" bson:"time"`
	IP        string `json:"ip" bson:"ip"`
	Formatted string `json:"formatted" bson:"formatted"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// ConsentSubmission is a stored answer record. The signature image lives in
// object storage and only its key is kept here.
type ConsentSubmission struct {
	ID                 string         `bson:"_id"`
	FormID             string         `bson:"formId"`
	Header             ConsentHeader  `bson:"header"`
	PatientName        string         `bson:"patientName"`
	CPF                string         `bson:"cpf"`
	RG                 string         `bson:"rg,omitempty"`
	BirthDate          string         `bson:"birthDate"`
	Responses          map[string]any `bson:"responses"`
	SignatureObjectKey string         `bson:"signatureObjectKey,omitempty"`
	DocumentObjectKey  string         `bson:"documentObjectKey,omitempty"`
	ExportStatus       string         `bson:"exportStatus"`
	ExportError        string         `bson:"exportError,omitempty"`
	ExportAttempts     int            `bson:"exportAttempts"`
	CreatedAt          time.Time      `bson:"createdAt"`
	ExportedAt         *time.Time     `bson:"exportedAt,omitempty"`
}

func (s ConsentSubmission) ConvertIntoResponse() responses.ConsentSubmission {
	return responses.ConsentSubmission{
		SubmissionID: s.ID,
		FormID:       s.FormID,
		Header: responses.ConsentHeader{
			Date:      s.Header.Date,
			Time:      s.Header.Time,
			IP:        s.Header.IP,
			Formatted: s.Header.Formatted,
			UserAgent: s.Header.UserAgent,
		},
		PatientName:        s.PatientName,
		CPF:                s.CPF,
		RG:                 s.RG,
		BirthDate:          s.BirthDate,
		Responses:          s.Responses,
		SignatureObjectKey: s.SignatureObjectKey,
		DocumentObjectKey:  s.DocumentObjectKey,
		ExportStatus:       s.ExportStatus,
		ExportError:        s.ExportError,
		ExportAttempts:     s.ExportAttempts,
		CreatedAt:          s.CreatedAt,
		ExportedAt:         s.ExportedAt,
	}
}
