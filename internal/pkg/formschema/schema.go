package formschema

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultBaseFieldIDs are the identity fields every consent record carries.
var DefaultBaseFieldIDs = []string{"patientName", "cpf", "birthDate"}

// BaseFieldSet is the immutable set of reserved identifiers whose rules are
// defined outside the question tree.
type BaseFieldSet struct {
	ids map[string]struct{}
}

func NewBaseFieldSet(ids ...string) BaseFieldSet {
	set := BaseFieldSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set.ids[id] = struct{}{}
	}
	return set
}

func (b BaseFieldSet) Contains(id string) bool {
	_, ok := b.ids[id]
	return ok
}

func (b BaseFieldSet) IDs() []string {
	ids := make([]string, 0, len(b.ids))
	for id := range b.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Schema is a flat, read-only mapping from field identifier to Rule. The zero
// value is an empty schema.
type Schema struct {
	fields map[string]Rule
	// ids holds the keys of fields in lexical order
	ids []string
}

// NewSchema copies fields into a new Schema.
func NewSchema(fields map[string]Rule) Schema {
	copied := make(map[string]Rule, len(fields))
	for id, rule := range fields {
		copied[id] = rule
	}
	return newSchema(copied)
}

// newSchema takes ownership of fields.
func newSchema(fields map[string]Rule) Schema {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Schema{fields: fields, ids: ids}
}

func (s Schema) Len() int {
	return len(s.fields)
}

func (s Schema) Has(id string) bool {
	_, ok := s.fields[id]
	return ok
}

func (s Schema) Rule(id string) (Rule, bool) {
	rule, ok := s.fields[id]
	return rule, ok
}

// FieldIDs returns the identifiers in lexical order.
func (s Schema) FieldIDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Fields returns a copy of the underlying mapping.
func (s Schema) Fields() map[string]Rule {
	copied := make(map[string]Rule, len(s.fields))
	for id, rule := range s.fields {
		copied[id] = rule
	}
	return copied
}

func (s Schema) MarshalJSON() ([]byte, error) {
	if len(s.fields) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(s.fields)
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	fields := make(map[string]Rule)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = newSchema(fields)
	return nil
}
