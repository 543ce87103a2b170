package responses

import (
	"time"

	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
)

type ConsentForm struct {
	FormID      string                `json:"form_id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []formschema.Question `json:"questions"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type ConsentFormSchema struct {
	FormID     string            `json:"form_id"`
	BaseFields []string          `json:"base_fields"`
	Fields     formschema.Schema `json:"fields"`
}
