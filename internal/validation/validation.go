// Package validation checks inbound create payloads field by field
// before anything reaches the database. Checks run in declaration order
// and stop at the first failing field.
package validation

import (
	"fmt"
	"strings"
)

// Kind is the JSON primitive a field must decode to.
type Kind int

const (
	String Kind = iota
	Number
)

func (k Kind) String() string {
	if k == Number {
		return "number"
	}
	return "string"
}

// Rule names a required field and the primitive it must hold.
type Rule struct {
	Field string
	Kind  Kind
}

// Check walks rules in order against a decoded JSON object. A field
// fails when it is absent, holds the wrong primitive, or (for strings)
// is blank after trimming. The first failure is returned and later
// fields are not inspected.
func Check(payload map[string]any, rules []Rule) error {
	for _, r := range rules {
		v, present := payload[r.Field]
		switch r.Kind {
		case Number:
			if _, isNum := v.(float64); !present || !isNum {
				return fmt.Errorf("%q must be a %s", r.Field, r.Kind)
			}
		default:
			s, isStr := v.(string)
			if !present || !isStr || strings.TrimSpace(s) == "" {
				return fmt.Errorf("%q must be a %s", r.Field, r.Kind)
			}
		}
	}
	return nil
}

// Str returns the raw string held by field, or "" when absent or not a
// string. Values are stored as sent; trimming happens only inside Check.
func Str(payload map[string]any, field string) string {
	s, _ := payload[field].(string)
	return s
}

// OptStr returns the string held by an optional field and whether it
// was present as a string at all.
func OptStr(payload map[string]any, field string) (string, bool) {
	s, ok := payload[field].(string)
	return s, ok
}

// Int returns the numeric field truncated to an int, or 0 when absent.
func Int(payload map[string]any, field string) int {
	f, _ := payload[field].(float64)
	return int(f)
}
