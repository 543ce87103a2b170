package formschema

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownFieldPolicy decides what happens to record fields the schema does
// not know about.
type UnknownFieldPolicy int

const (
	UnknownFieldsPermit UnknownFieldPolicy = iota
	UnknownFieldsReject
)

const (
	ViolationMessageNotText     = "must be a text value"
	ViolationMessageNotTextList = "must be a list of text values"
	ViolationMessageUnknown     = "is not part of this form"
)

// Violation describes why a single field was rejected.
type Violation struct {
	Field    string   `json:"field"`
	Expected RuleKind `json:"expected,omitempty"`
	Message  string   `json:"message"`
}

// Violations is keyed by field identifier; a field has at most one entry.
type Violations map[string]Violation

func (v Violations) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Fields returns the offending field identifiers in lexical order.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Merge returns a new set holding v and other. Entries of v win on conflict.
func (v Violations) Merge(other Violations) Violations {
	merged := make(Violations, len(v)+len(other))
	for field, violation := range other {
		merged[field] = violation
	}
	for field, violation := range v {
		merged[field] = violation
	}
	return merged
}

// Messages flattens the set into field -> message, the shape sent to clients.
func (v Violations) Messages() map[string]string {
	messages := make(map[string]string, len(v))
	for field, violation := range v {
		messages[field] = violation.Message
	}
	return messages
}

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range v.Fields() {
		parts = append(parts, fmt.Sprintf("%s %s", field, v[field].Message))
	}
	return strings.Join(parts, ", ")
}

// Err returns nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Validate checks every field present in record against schema and reports
// each non-conforming field independently. Absent fields are never reported.
func Validate(schema Schema, record map[string]any, policy UnknownFieldPolicy) Violations {
	violations := make(Violations)
	for field, value := range record {
		rule, ok := schema.Rule(field)
		if !ok {
			if policy == UnknownFieldsReject {
				violations[field] = Violation{Field: field, Message: ViolationMessageUnknown}
			}
			continue
		}
		if rule.Accepts(value) {
			continue
		}
		violations[field] = Violation{
			Field:    field,
			Expected: rule.Kind,
			Message:  messageFor(rule.Kind),
		}
	}
	return violations
}

func messageFor(kind RuleKind) string {
	if kind == RuleKindTextList {
		return ViolationMessageNotTextList
	}
	return ViolationMessageNotText
}
