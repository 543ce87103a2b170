package formschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	optionalText     = Rule{Kind: RuleKindText, Optional: true}
	optionalTextList = Rule{Kind: RuleKindTextList, Optional: true}
	optionalAny      = Rule{Kind: RuleKindAny, Optional: true}
)

func TestDerive_FlatTree(t *testing.T) {
	questions := []Question{
		{ID: "allergies", Type: QuestionTypeShortText},
		{ID: "history", Type: QuestionTypeLongText},
		{ID: "weight", Type: QuestionTypeNumericText},
		{ID: "smoker", Type: QuestionTypeSingleChoice},
		{ID: "symptoms", Type: QuestionTypeMultiChoice},
		{ID: "photo", Type: QuestionType("image")},
		{ID: "cpf", Type: QuestionTypeShortText},
	}

	schema := Derive(questions, NewBaseFieldSet(DefaultBaseFieldIDs...))

	assert.Equal(t, map[string]Rule{
		"allergies": optionalText,
		"history":   optionalText,
		"weight":    optionalText,
		"smoker":    optionalText,
		"symptoms":  optionalTextList,
		"photo":     optionalAny,
	}, schema.Fields())
}

func TestDerive_EmptyTree(t *testing.T) {
	schema := Derive(nil, NewBaseFieldSet("cpf"))

	assert.Equal(t, 0, schema.Len())
	assert.Empty(t, schema.FieldIDs())
}

func TestDerive_SingleChoiceRevealsMultiChoice(t *testing.T) {
	questions := []Question{
		{
			ID:   "q1",
			Type: QuestionTypeSingleChoice,
			ConditionalBranches: []Branch{
				{Trigger: "yes", Questions: []Question{{ID: "q2", Type: QuestionTypeMultiChoice}}},
			},
		},
	}

	schema := Derive(questions, NewBaseFieldSet("cpf"))

	assert.Equal(t, map[string]Rule{
		"q1": optionalText,
		"q2": optionalTextList,
	}, schema.Fields())
}

func TestDerive_OnlyBaseField(t *testing.T) {
	questions := []Question{{ID: "cpf", Type: QuestionTypeShortText}}

	schema := Derive(questions, NewBaseFieldSet("cpf"))

	assert.Equal(t, map[string]Rule{}, schema.Fields())
}

func TestDerive_DepthIndependence(t *testing.T) {
	questions := []Question{
		{
			ID:   "level0",
			Type: QuestionTypeSingleChoice,
			ConditionalBranches: []Branch{{
				Trigger: "yes",
				Questions: []Question{{
					ID:   "level1",
					Type: QuestionTypeSingleChoice,
					ConditionalBranches: []Branch{{
						Trigger: "no",
						Questions: []Question{{
							ID:   "level2",
							Type: QuestionTypeSingleChoice,
							ConditionalBranches: []Branch{{
								Trigger:   "maybe",
								Questions: []Question{{ID: "level3", Type: QuestionTypeLongText}},
							}},
						}},
					}},
				}},
			}},
		},
	}

	nested := Derive(questions, NewBaseFieldSet())
	flat := Derive([]Question{{ID: "level3", Type: QuestionTypeLongText}}, NewBaseFieldSet())

	assert.Equal(t, []string{"level0", "level1", "level2", "level3"}, nested.FieldIDs())
	deep, ok := nested.Rule("level3")
	require.True(t, ok)
	root, ok := flat.Rule("level3")
	require.True(t, ok)
	assert.Equal(t, root, deep)
}

func TestDerive_IgnoresTriggerValues(t *testing.T) {
	questions := []Question{
		{
			ID:   "pregnant",
			Type: QuestionTypeSingleChoice,
			ConditionalBranches: []Branch{
				{Trigger: "yes", Questions: []Question{{ID: "weeks", Type: QuestionTypeNumericText}}},
				{Trigger: "no", Questions: []Question{{ID: "plans", Type: QuestionTypeLongText}}},
				{Trigger: "", Questions: []Question{{ID: "notes", Type: QuestionTypeShortText}}},
			},
		},
	}

	schema := Derive(questions, NewBaseFieldSet())

	assert.Equal(t, []string{"notes", "plans", "pregnant", "weeks"}, schema.FieldIDs())
}

func TestDerive_Idempotent(t *testing.T) {
	questions := []Question{
		{
			ID:   "q1",
			Type: QuestionTypeSingleChoice,
			ConditionalBranches: []Branch{
				{Trigger: "yes", Questions: []Question{
					{ID: "q2", Type: QuestionTypeMultiChoice},
					{ID: "q3", Type: QuestionType("signature")},
				}},
			},
		},
	}
	base := NewBaseFieldSet(DefaultBaseFieldIDs...)

	first := Derive(questions, base)
	second := Derive(questions, base)

	assert.Equal(t, first.Fields(), second.Fields())
}

func TestDerive_ExcludesBaseFieldsAtAnyDepth(t *testing.T) {
	questions := []Question{
		{
			ID:   "hasGuardian",
			Type: QuestionTypeSingleChoice,
			ConditionalBranches: []Branch{{
				Trigger: "yes",
				Questions: []Question{{
					ID:   "guardianName",
					Type: QuestionTypeShortText,
					ConditionalBranches: []Branch{{
						Trigger: "any",
						Questions: []Question{
							{ID: "birthDate", Type: QuestionTypeMultiChoice},
							{ID: "patientName", Type: QuestionTypeLongText},
						},
					}},
				}},
			}},
		},
	}

	schema := Derive(questions, NewBaseFieldSet(DefaultBaseFieldIDs...))

	assert.False(t, schema.Has("birthDate"))
	assert.False(t, schema.Has("patientName"))
	assert.Equal(t, []string{"guardianName", "hasGuardian"}, schema.FieldIDs())
}

func TestDerive_BaseFieldStillTraversed(t *testing.T) {
	questions := []Question{
		{
			ID:   "cpf",
			Type: QuestionTypeShortText,
			ConditionalBranches: []Branch{
				{Trigger: "x", Questions: []Question{{ID: "cpfNotes", Type: QuestionTypeLongText}}},
			},
		},
	}

	schema := Derive(questions, NewBaseFieldSet("cpf"))

	assert.Equal(t, map[string]Rule{"cpfNotes": optionalText}, schema.Fields())
}

func TestDerive_CollisionLastVisitedWins(t *testing.T) {
	t.Run("Across Branches", func(t *testing.T) {
		questions := []Question{
			{
				ID:   "q1",
				Type: QuestionTypeSingleChoice,
				ConditionalBranches: []Branch{
					{Trigger: "yes", Questions: []Question{{ID: "detail", Type: QuestionTypeShortText}}},
					{Trigger: "no", Questions: []Question{{ID: "detail", Type: QuestionTypeMultiChoice}}},
				},
			},
		}

		schema := Derive(questions, NewBaseFieldSet())

		rule, ok := schema.Rule("detail")
		require.True(t, ok)
		assert.Equal(t, optionalTextList, rule)
		assert.Equal(t, 2, schema.Len())
	})

	t.Run("Nested Before Later Root", func(t *testing.T) {
		questions := []Question{
			{
				ID:   "q1",
				Type: QuestionTypeSingleChoice,
				ConditionalBranches: []Branch{
					{Trigger: "yes", Questions: []Question{{ID: "shared", Type: QuestionTypeMultiChoice}}},
				},
			},
			{ID: "shared", Type: QuestionType("file")},
		}

		schema := Derive(questions, NewBaseFieldSet())

		rule, _ := schema.Rule("shared")
		assert.Equal(t, optionalAny, rule)
	})

	t.Run("Root Before Its Own Branch", func(t *testing.T) {
		questions := []Question{
			{
				ID:   "shared",
				Type: QuestionTypeMultiChoice,
				ConditionalBranches: []Branch{
					{Trigger: "a", Questions: []Question{{ID: "shared", Type: QuestionTypeLongText}}},
				},
			},
		}

		schema := Derive(questions, NewBaseFieldSet())

		rule, _ := schema.Rule("shared")
		assert.Equal(t, optionalText, rule)
	})
}

func TestDerive_ResultIsIndependentCopy(t *testing.T) {
	questions := []Question{{ID: "q1", Type: QuestionTypeShortText}}
	schema := Derive(questions, NewBaseFieldSet())

	fields := schema.Fields()
	fields["q1"] = optionalAny
	fields["q2"] = optionalAny

	rule, _ := schema.Rule("q1")
	assert.Equal(t, optionalText, rule)
	assert.False(t, schema.Has("q2"))
}

func TestDuplicateIDs(t *testing.T) {
	t.Run("No Duplicates", func(t *testing.T) {
		questions := []Question{
			{ID: "a", Type: QuestionTypeShortText},
			{ID: "b", Type: QuestionTypeShortText},
		}
		assert.Empty(t, DuplicateIDs(questions))
	})

	t.Run("Duplicates At Different Depths", func(t *testing.T) {
		questions := []Question{
			{
				ID:   "z",
				Type: QuestionTypeSingleChoice,
				ConditionalBranches: []Branch{
					{Trigger: "yes", Questions: []Question{{ID: "a"}, {ID: "z"}}},
					{Trigger: "no", Questions: []Question{{ID: "a"}}},
				},
			},
			{ID: "b"},
		}
		assert.Equal(t, []string{"a", "z"}, DuplicateIDs(questions))
	})
}

func TestWalk_Order(t *testing.T) {
	questions := []Question{
		{
			ID: "a",
			ConditionalBranches: []Branch{
				{Trigger: "1", Questions: []Question{{ID: "a1"}, {ID: "a2", ConditionalBranches: []Branch{{Questions: []Question{{ID: "a2x"}}}}}}},
				{Trigger: "2", Questions: []Question{{ID: "a3"}}},
			},
		},
		{ID: "b"},
	}

	var order []string
	var depths []int
	Walk(questions, func(q Question, depth int) {
		order = append(order, q.ID)
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{"a", "a1", "a2", "a2x", "a3", "b"}, order)
	assert.Equal(t, []int{0, 1, 1, 2, 1, 0}, depths)
}

func TestQuestion_UnmarshalJSON(t *testing.T) {
	payload := []byte(`[
		{"id": "q1", "type": "radio", "conditionalQuestions": [
			{"value": "sim", "questions": [
				{"id": "q2", "type": "checkbox"},
				{"id": "q3", "type": "textarea"},
				{"id": "q4", "type": "number"},
				{"id": "q5", "type": "text"},
				{"id": "q6", "type": "date"}
			]}
		]}
	]`)

	var questions []Question
	require.NoError(t, json.Unmarshal(payload, &questions))

	schema := Derive(questions, NewBaseFieldSet(DefaultBaseFieldIDs...))

	assert.Equal(t, map[string]Rule{
		"q1": optionalText,
		"q2": optionalTextList,
		"q3": optionalText,
		"q4": optionalText,
		"q5": optionalText,
		"q6": optionalAny,
	}, schema.Fields())
	assert.Equal(t, QuestionType("date"), questions[0].ConditionalBranches[0].Questions[4].Type)
	assert.False(t, QuestionType("date").IsKnown())
	assert.True(t, questions[0].Type.IsKnown())
}

func TestSchema_JSONRoundTrip(t *testing.T) {
	schema := NewSchema(map[string]Rule{"q1": optionalText, "q2": optionalTextList})

	encoded, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"q1":{"kind":"text","optional":true},"q2":{"kind":"text-list","optional":true}}`, string(encoded))

	var decoded Schema
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, schema.Fields(), decoded.Fields())

	empty, err := json.Marshal(Schema{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

func TestSchema_EmptyEncodesAsObject(t *testing.T) {
	type envelope struct {
		Fields Schema `json:"fields"`
	}

	testCases := []struct {
		name   string
		schema Schema
	}{
		{name: "Zero Value", schema: Schema{}},
		{name: "Derived From Empty Tree", schema: Derive(nil, NewBaseFieldSet(DefaultBaseFieldIDs...))},
		{name: "Only Base Fields", schema: Derive([]Question{{ID: "cpf", Type: QuestionTypeShortText}}, NewBaseFieldSet("cpf"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := json.Marshal(envelope{Fields: tc.schema})
			require.NoError(t, err)
			assert.JSONEq(t, `{"fields":{}}`, string(encoded))

			pointer, err := json.Marshal(&envelope{Fields: tc.schema})
			require.NoError(t, err)
			assert.JSONEq(t, `{"fields":{}}`, string(pointer))
		})
	}
}

func TestBaseFieldSet(t *testing.T) {
	set := NewBaseFieldSet(" cpf ", "", "birthDate", "cpf")

	assert.True(t, set.Contains("cpf"))
	assert.True(t, set.Contains("birthDate"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{"birthDate", "cpf"}, set.IDs())
}
