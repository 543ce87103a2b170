package utils

import (
	"strings"

	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func sanitizeQuestions(questions []formschema.Question) {
	for i := range questions {
		questions[i].ID = strings.TrimSpace(questions[i].ID)
		questions[i].Label = strings.TrimSpace(questions[i].Label)
		questions[i].Options = cleanWhiteSpaceFromEachStringOfAnArray(questions[i].Options)
		for j := range questions[i].ConditionalBranches {
			sanitizeQuestions(questions[i].ConditionalBranches[j].Questions)
		}
	}
}

func SanitizeCreateConsentFormRequest(input *requests.CreateConsentForm) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	sanitizeQuestions(input.Questions)
}

func SanitizeUpdateConsentFormRequest(input *requests.UpdateConsentForm) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.FormID = strings.TrimSpace(input.FormID)
	sanitizeQuestions(input.Questions)
}

// SanitizeSubmitConsentRequest trims identity fields and strips CPF
// punctuation. Answers are left untouched; their shape is what gets validated.
func SanitizeSubmitConsentRequest(input *requests.SubmitConsent) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.CPF = NormalizeCPF(input.CPF)
	input.RG = strings.TrimSpace(input.RG)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Signature = strings.TrimSpace(input.Signature)
}
