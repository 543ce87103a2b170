package utils

import (
	"testing"

	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeSubmitConsentRequest(t *testing.T) {
	t.Run("Identity Fields", func(t *testing.T) {
		request := &requests.SubmitConsent{
			PatientName: "  Maria Silva  ",
			CPF:         " 529.982.247-25 ",
			RG:          " 12.345.678-9 ",
			BirthDate:   " 01/02/1990 ",
		}

		SanitizeSubmitConsentRequest(request)

		assert.Equal(t, "Maria Silva", request.PatientName)
		assert.Equal(t, "52998224725", request.CPF, "cpf should keep digits only")
		assert.Equal(t, "12.345.678-9", request.RG)
		assert.Equal(t, "01/02/1990", request.BirthDate)
	})

	t.Run("Responses Untouched", func(t *testing.T) {
		request := &requests.SubmitConsent{
			Responses: map[string]any{"q1": "  yes  "},
		}

		SanitizeSubmitConsentRequest(request)

		assert.Equal(t, "  yes  ", request.Responses["q1"])
	})
}

func TestSanitizeCreateConsentFormRequest(t *testing.T) {
	request := &requests.CreateConsentForm{
		Title: "  Termo de consentimento  ",
		Questions: []formschema.Question{
			{
				ID:      " q1 ",
				Type:    formschema.QuestionTypeSingleChoice,
				Options: []string{" sim ", "não "},
				ConditionalBranches: []formschema.Branch{
					{Trigger: "sim", Questions: []formschema.Question{{ID: " q2\t", Type: formschema.QuestionTypeShortText}}},
				},
			},
		},
	}

	SanitizeCreateConsentFormRequest(request)

	assert.Equal(t, "Termo de consentimento", request.Title)
	assert.Equal(t, "q1", request.Questions[0].ID)
	assert.Equal(t, []string{"sim", "não"}, request.Questions[0].Options)
	assert.Equal(t, "q2", request.Questions[0].ConditionalBranches[0].Questions[0].ID, "nested ids should be trimmed")
}
