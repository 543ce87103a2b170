package formschema

// RuleKind is the value shape a field must have.
type RuleKind string

const (
	RuleKindText     RuleKind = "text"
	RuleKindTextList RuleKind = "text-list"
	RuleKindAny      RuleKind = "any"
)

// Rule constrains a single field of an answer record. Derived rules are
// always optional; whether a revealed field must be filled is decided by the
// form renderer.
type Rule struct {
	Kind     RuleKind `json:"kind"`
	Optional bool     `json:"optional"`
}

func ruleFor(t QuestionType) Rule {
	switch t {
	case QuestionTypeShortText, QuestionTypeLongText:
		return Rule{Kind: RuleKindText, Optional: true}
	case QuestionTypeNumericText:
		// numeric format is not enforced here
		return Rule{Kind: RuleKindText, Optional: true}
	case QuestionTypeSingleChoice:
		return Rule{Kind: RuleKindText, Optional: true}
	case QuestionTypeMultiChoice:
		return Rule{Kind: RuleKindTextList, Optional: true}
	default:
		return Rule{Kind: RuleKindAny, Optional: true}
	}
}

// Accepts reports whether value has the shape required by r. A nil value
// only conforms to RuleKindAny.
func (r Rule) Accepts(value any) bool {
	switch r.Kind {
	case RuleKindText:
		_, ok := value.(string)
		return ok
	case RuleKindTextList:
		switch v := value.(type) {
		case []string:
			return true
		case []any:
			for _, item := range v {
				if _, ok := item.(string); !ok {
					return false
				}
			}
			return true
		}
		return false
	default:
		return true
	}
}
