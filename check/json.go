package check

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// jsonRule is the failure label for operands that fail to decode.
const jsonRule = "json"

// JSONEq compares two JSON documents semantically: both decode and then
// flow through the regular dispatch, so objects hit the map rule (and
// honor Only/Except) while arrays hit the sequences rule (and honor
// IgnoreOrder). Key order and whitespace never matter. On success it
// returns leftJSON, or the Returning option when given a string.
func JSONEq(t TestingT, leftJSON, rightJSON string, opts ...Option) string {
	t.Helper()

	out, err := JSONEqE(leftJSON, rightJSON, opts...)
	if err != nil {
		t.Fatalf("%s", err)

		return ""
	}

	return out
}

// JSONEqE is the error-returning core of JSONEq.
func JSONEqE(leftJSON, rightJSON string, opts ...Option) (string, error) {
	var leftDoc, rightDoc any

	if err := json.Unmarshal([]byte(leftJSON), &leftDoc); err != nil {
		return "", failf(jsonRule, "left operand is not valid JSON: %v", err)
	}

	if err := json.Unmarshal([]byte(rightJSON), &rightDoc); err != nil {
		return "", failf(jsonRule, "right operand is not valid JSON: %v", err)
	}

	if _, err := Equal(leftDoc, rightDoc, opts...); err != nil {
		return "", err
	}

	o := newOptions(opts...)
	if o.hasReturning {
		if s, ok := o.returning.(string); ok {
			return s, nil
		}
	}

	return leftJSON, nil
}

// At extracts the value at a gjson path from a JSON document, for use as
// a check operand:
//
//	check.Eq(t, check.At(body, "user.name"), "ada")
//
// A path that matches nothing yields nil.
func At(doc, path string) any {
	return gjson.Get(doc, path).Value()
}

// Exists reports whether a gjson path matches anything in the document.
func Exists(doc, path string) bool {
	return gjson.Get(doc, path).Exists()
}
