package requests

import "time"

// EventMessage is the body of every message published to the broker.
type EventMessage struct {
	MessageID  string      `json:"message_id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type ConsentSubmissionExported struct {
	SubmissionID      string    `json:"submission_id"`
	FormID            string    `json:"form_id"`
	BucketName        string    `json:"bucket_name"`
	DocumentObjectKey string    `json:"document_object_key"`
	ExportedAt        time.Time `json:"exported_at"`
}
