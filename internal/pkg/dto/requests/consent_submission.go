package requests

// SubmitConsent is the answer record of a consent form. The JSON names of the
// identity fields are the base field ids the form schema leaves out.
type SubmitConsent struct {
	PatientName string         `json:"patientName" validate:"required,max=200"`
	CPF         string         `json:"cpf" validate:"required,cpf"`
	RG          string         `json:"rg" validate:"omitempty,max=20"`
	BirthDate   string         `json:"birthDate" validate:"required,birth_date"`
	Responses   map[string]any `json:"responses"`
	Signature   string         `json:"signature,omitempty"`
	FormID      string         `json:"-"`
	IPAddress   string         `json:"-"`
	UserAgent   string         `json:"-"`
}

type FindSubmissionsByForm struct {
	FormID string
}
