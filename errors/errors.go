// Package errors provides error handling for wrapgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to failures
//
// Usage:
//
//	// Wrap a sentinel so callers can test with errors.Is
//	return errors.Wrapf(errors.ErrInvalidIdentifier, "id %q in %s", id, file)
//
//	// Add hints for users
//	return errors.WithHint(err, "ids may only contain a-z, A-Z and 0-9")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"fmt"
	"sort"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for every failure kind a generation run can report.
// Wrap these with Wrapf to add context while preserving errors.Is.
var (
	// ErrInvalidIdentifier indicates a view id that breaks the naming rules
	ErrInvalidIdentifier = New("invalid identifier")

	// ErrDuplicateIdentifier indicates ids declared more than once in a document
	ErrDuplicateIdentifier = New("duplicate identifier")

	// ErrPlaceholderNotAllowed indicates a placeholder-bearing string used where
	// no arguments can be supplied
	ErrPlaceholderNotAllowed = New("placeholder not allowed here")

	// ErrMalformedConfiguration indicates an unusable configuration value
	ErrMalformedConfiguration = New("malformed configuration")

	// ErrMissingRequiredFolder indicates the default layout folder is absent
	ErrMissingRequiredFolder = New("missing required folder")

	// ErrUnknownLayout indicates an include referencing a layout that was not parsed
	ErrUnknownLayout = New("unknown layout")

	// ErrIncludeCycle indicates a layout that includes itself, directly or transitively
	ErrIncludeCycle = New("include cycle")

	// ErrMalformedString indicates a string resource the placeholder scanner rejects
	ErrMalformedString = New("malformed string resource")

	// ErrVariantMismatch indicates a locale variant disagreeing with its default string
	ErrVariantMismatch = New("string variant mismatch")

	// ErrMalformedDocument indicates an XML document with an unexpected structure
	ErrMalformedDocument = New("malformed document")

	// ErrMalformedDeclaration indicates an unusable interface or type hierarchy entry
	ErrMalformedDeclaration = New("malformed declaration")

	// ErrIncludeConflict indicates ids excluded because of conflicts across includes
	ErrIncludeConflict = New("conflicting identifier across includes")
)

// DuplicateIdentifierError summarises every document that declared at least
// one id more than once. It is reported once per run, after all layouts are
// parsed, rather than at the first occurrence.
type DuplicateIdentifierError struct {
	// Documents maps a layout file name to its conflicting ids
	Documents map[string][]string
}

func (e *DuplicateIdentifierError) Error() string {
	files := make([]string, 0, len(e.Documents))
	for file := range e.Documents {
		files = append(files, file)
	}
	sort.Strings(files)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("duplicated ids in %d layout(s):", len(files)))
	for _, file := range files {
		ids := append([]string(nil), e.Documents[file]...)
		sort.Strings(ids)
		sb.WriteString(fmt.Sprintf("\n- %s: %s", file, strings.Join(ids, ", ")))
	}
	return sb.String()
}

// Unwrap exposes ErrDuplicateIdentifier so errors.Is matches the summary.
func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}

// IsUserError reports whether err stems from the inputs of a run (layouts,
// strings, declarations, configuration) rather than from the environment.
func IsUserError(err error) bool {
	return err != nil && IsAny(err,
		ErrInvalidIdentifier,
		ErrDuplicateIdentifier,
		ErrPlaceholderNotAllowed,
		ErrMalformedConfiguration,
		ErrMissingRequiredFolder,
		ErrUnknownLayout,
		ErrIncludeCycle,
		ErrMalformedString,
		ErrVariantMismatch,
		ErrMalformedDocument,
		ErrMalformedDeclaration,
		ErrIncludeConflict,
	)
}
