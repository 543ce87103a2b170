package formschema

import (
	"github.com/goccy/go-json"
)

// QuestionType is the answer kind of a question.
type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "short-text"
	QuestionTypeLongText     QuestionType = "long-text"
	QuestionTypeNumericText  QuestionType = "numeric-text"
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
)

// legacyQuestionTypes maps the names used by the first version of the mobile
// form definitions to their canonical kinds.
var legacyQuestionTypes = map[string]QuestionType{
	"text":     QuestionTypeShortText,
	"textarea": QuestionTypeLongText,
	"number":   QuestionTypeNumericText,
	"radio":    QuestionTypeSingleChoice,
	"checkbox": QuestionTypeMultiChoice,
}

// ParseQuestionType normalizes raw into a QuestionType. Unknown names are
// returned verbatim so they derive the unconstrained rule.
func ParseQuestionType(raw string) QuestionType {
	if canonical, ok := legacyQuestionTypes[raw]; ok {
		return canonical
	}
	return QuestionType(raw)
}

// IsKnown reports whether t belongs to the closed set of answer kinds.
func (t QuestionType) IsKnown() bool {
	switch t {
	case QuestionTypeShortText, QuestionTypeLongText, QuestionTypeNumericText,
		QuestionTypeSingleChoice, QuestionTypeMultiChoice:
		return true
	}
	return false
}

func (t *QuestionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseQuestionType(raw)
	return nil
}

// Question is a node of a form definition tree. Its ID is the key of the
// answer in a submitted record and must be unique across the whole tree.
type Question struct {
	ID                  string       `json:"id" bson:"id" validate:"required"`
	Type                QuestionType `json:"type" bson:"type" validate:"required"`
	Label               string       `json:"label,omitempty" bson:"label,omitempty"`
	Options             []string     `json:"options,omitempty" bson:"options,omitempty"`
	ConditionalBranches []Branch     `json:"conditionalQuestions,omitempty" bson:"conditional_questions,omitempty" validate:"dive"`
}

// Branch reveals Questions when the parent question's answer equals or
// contains Trigger.
type Branch struct {
	Trigger   string     `json:"value" bson:"value"`
	Questions []Question `json:"questions" bson:"questions" validate:"dive"`
}
