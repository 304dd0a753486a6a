// Package strres reads Android string resources and finds the ones that
// need substitution arguments.
package strres

import (
	"strings"

	"github.com/teranos/wrapgen/errors"
)

// ParamType is the Java type of one substitution argument.
type ParamType string

const (
	ParamString ParamType = "String"
	ParamInt    ParamType = "int"
)

const stringRefPrefix = "@string/"

// RequiredParams returns the argument types a string resource text needs, in
// order of appearance. Explicit positions such as %2$d are accepted but do
// not reorder the result.
func RequiredParams(text string) ([]ParamType, error) {
	var (
		params     []ParamType
		inFormat   bool
		dollarSeen bool
		escaped    bool
	)

	for i, ch := range text {
		switch {
		case escaped:
			if ch != 'n' && ch != '\'' && ch != '"' && ch != '@' {
				return nil, errors.Wrapf(errors.ErrMalformedString, "unexpected escape \\%c in %q", ch, text)
			}
			escaped = false

		case inFormat:
			switch {
			case ch == 's':
				params = append(params, ParamString)
				inFormat, dollarSeen = false, false
			case ch == 'd':
				params = append(params, ParamInt)
				inFormat, dollarSeen = false, false
			case ch >= '0' && ch <= '9':
				if dollarSeen {
					return nil, errors.Wrapf(errors.ErrMalformedString, "digits after $ in placeholder in %q", text)
				}
			case ch == '$':
				if dollarSeen {
					return nil, errors.Wrapf(errors.ErrMalformedString, "more than one $ in placeholder in %q", text)
				}
				dollarSeen = true
			default:
				return nil, errors.Wrapf(errors.ErrMalformedString, "unexpected %q in placeholder in %q", ch, text)
			}

		case ch == '%':
			inFormat = true

		case ch == '\\':
			escaped = true

		case ch == '\'' || ch == '"':
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrMalformedString, "unescaped %c in %q", ch, text),
				"quotes in string resources must be escaped with a backslash")

		case i == 0 && ch == '@' && !strings.HasPrefix(text, stringRefPrefix):
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrMalformedString, "leading @ in %q", text),
				`@ at the start of a string references another resource; write \@ to display it`)
		}
	}
	return params, nil
}

// SameParams reports whether a and b require the same ordered argument types.
func SameParams(a, b []ParamType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
