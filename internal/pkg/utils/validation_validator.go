package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

var (
	validate           *validator.Validate
	cpfFormattingRegex = regexp.MustCompile(constvars.RegexCPFFormattedDigit)
	numericRegex       = regexp.MustCompile(constvars.RegexNumeric)
	dateDDMMYYYYRegex  = regexp.MustCompile(constvars.RegexDateDDMMYYYY)
	dateYYYYMMDDRegex  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("birth_date", validateBirthDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonTagName makes validation errors carry the JSON field name, which for
// consent submissions is also the record field id.
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateCPF(fl validator.FieldLevel) bool {
	return IsValidCPF(fl.Field().String())
}

func validateBirthDate(fl validator.FieldLevel) bool {
	birthDate, ok := ParseBirthDate(fl.Field().String())
	if !ok {
		return false
	}
	return !birthDate.After(time.Now())
}

// IsValidCPF checks an 11 digit CPF, with or without punctuation, against its
// two check digits.
func IsValidCPF(raw string) bool {
	cpf := NormalizeCPF(raw)
	if len(cpf) != 11 || !numericRegex.MatchString(cpf) {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == len(cpf) {
		return false
	}

	digits := make([]int, len(cpf))
	for i, r := range cpf {
		digits[i] = int(r - '0')
	}
	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, digit := range digits {
		sum += digit * weight
		weight--
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func NormalizeCPF(raw string) string {
	return cpfFormattingRegex.ReplaceAllString(strings.TrimSpace(raw), "")
}

// ParseBirthDate accepts DD/MM/YYYY, the format the form collects, and ISO
// dates.
func ParseBirthDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	layout := ""
	switch {
	case dateDDMMYYYYRegex.MatchString(raw):
		layout = constvars.ConsentBirthDateLayout
	case dateYYYYMMDDRegex.MatchString(raw):
		layout = constvars.ConsentBirthDateISOLayout
	default:
		return time.Time{}, false
	}
	birthDate, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return birthDate, true
}
