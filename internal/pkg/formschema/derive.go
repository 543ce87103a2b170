package formschema

import "sort"

// Derive computes the validation schema of a question tree.
//
// Every question at every depth contributes a rule, whatever the trigger of
// the branch it sits in, except those whose ID is in base. Traversal is
// depth-first: a question, then its branches in order, then the questions of
// each branch in order. When two questions share an ID the one visited last
// wins; use DuplicateIDs to detect that case.
//
// The tree must be acyclic.
func Derive(questions []Question, base BaseFieldSet) Schema {
	fields := make(map[string]Rule)
	var visit func(q Question)
	visit = func(q Question) {
		if !base.Contains(q.ID) {
			fields[q.ID] = ruleFor(q.Type)
		}
		for _, branch := range q.ConditionalBranches {
			for _, nested := range branch.Questions {
				visit(nested)
			}
		}
	}
	for _, q := range questions {
		visit(q)
	}
	return newSchema(fields)
}

// DuplicateIDs returns, in lexical order, every question ID that occurs more
// than once anywhere in the tree.
func DuplicateIDs(questions []Question) []string {
	seen := make(map[string]int)
	Walk(questions, func(q Question, _ int) {
		seen[q.ID]++
	})

	var duplicates []string
	for id, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, id)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}

// Walk calls fn for every question in Derive's traversal order. depth is 0
// for root questions.
func Walk(questions []Question, fn func(q Question, depth int)) {
	var visit func(q Question, depth int)
	visit = func(q Question, depth int) {
		fn(q, depth)
		for _, branch := range q.ConditionalBranches {
			for _, nested := range branch.Questions {
				visit(nested, depth+1)
			}
		}
	}
	for _, q := range questions {
		visit(q, 0)
	}
}
