// Package filter provides expression-based client-side filtering for
// Marvel API results. Expressions are written in the expr language and
// evaluated against the JSON representation of each entity, so any field
// the API returns is addressable by its JSON name:
//
//	name startsWith "Iron"
//	issueNumber > 10 && pageCount >= 32
//	daysSince(parseDate(modified)) < 365
package filter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression that can be matched against
// Marvel entities. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow entity properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the source expression of the filter
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single entity. The entity is
// flattened to its JSON field names before evaluation.
func (f *Filter) Match(entity any) (bool, error) {
	env, err := buildEnv(entity)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		// expr.AsBool guarantees this at compile time, but guard anyway.
		return false, nil
	}
	return matched, nil
}

// Apply returns the entities matching the filter, preserving input order
func Apply[T any](f *Filter, entities []T) ([]T, error) {
	matched := make([]T, 0, len(entities))
	for i := range entities {
		ok, err := f.Match(entities[i])
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, entities[i])
		}
	}
	return matched, nil
}

// buildEnv flattens an entity into a map keyed by JSON field names and
// merges in the helper functions.
func buildEnv(entity any) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	env := helperFunctions()
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return env, nil
}

// helperFunctions returns the helpers available inside expressions
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)

	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		for _, layout := range []string{"2006-01-02T15:04:05-0700", "2006-01-02"} {
			if t, err := time.Parse(layout, dateStr); err == nil {
				return t
			}
		}
		return time.Time{}
	}

	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper

	return env
}
