package requests

import "github.com/kralluz/imec-formularios-app/internal/pkg/formschema"

type CreateConsentForm struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"max=2000"`
	Questions   []formschema.Question `json:"questions" validate:"dive"`
}

type UpdateConsentForm struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"max=2000"`
	Questions   []formschema.Question `json:"questions" validate:"dive"`
	FormID      string                `json:"-"`
}
