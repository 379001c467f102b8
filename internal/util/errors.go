package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used throughout gridview
var (
	ErrNoColumns     = errors.New("no columns in input")
	ErrEmptyInput    = errors.New("input contains no records")
	ErrBadPageSize   = errors.New("page size must be a positive integer")
	ErrNoDatabaseURL = errors.New("no database URL (set --url or GRIDVIEW_DB_URL)")
)

// GridError is a structured error with context and suggestions
type GridError struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *GridError) Error() string {
	return e.Title
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted error message
func (e *GridError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new GridError
func NewError(title string) *GridError {
	return &GridError{Title: title}
}

// WithMessage adds a detailed message
func (e *GridError) WithMessage(msg string) *GridError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *GridError) WithContext(ctx string) *GridError {
	e.Context = ctx
	return e
}

// WithCauses adds possible causes
func (e *GridError) WithCauses(causes ...string) *GridError {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *GridError) WithSuggestion(sug string) *GridError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *GridError) WithSuggestions(sugs ...string) *GridError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *GridError) Wrap(err error) *GridError {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// FileNotFoundError returns a structured error for a missing input file
func FileNotFoundError(path string, err error) *GridError {
	return NewError(fmt.Sprintf("Cannot read '%s'", path)).
		WithCauses(
			"The file does not exist",
			"You lack permission to read it",
		).
		WithSuggestions(
			"ls -l "+path,
			"gridview demo          # Try the viewer with sample data",
		).
		Wrap(err)
}

// MalformedCSVError returns a structured error for unparseable CSV input
func MalformedCSVError(path string, err error) *GridError {
	return NewError("Malformed CSV input").
		WithContext(path).
		WithCauses(
			"Rows have differing numbers of fields",
			"The file is not actually CSV",
		).
		WithSuggestion("head " + path).
		Wrap(err)
}

// DatabaseConnectionError returns a structured error for DB connection issues
func DatabaseConnectionError(url string, err error) *GridError {
	return NewError("Cannot connect to database").
		WithContext(url).
		WithCauses(
			"Database server is not running",
			"Invalid connection credentials",
			"Network connectivity issues",
		).
		WithSuggestion("psql \"" + url + "\"   # Verify the URL works").
		Wrap(err)
}

// BadPageSizeError returns a structured error for invalid --page-size values
func BadPageSizeError(got int) *GridError {
	return NewError(fmt.Sprintf("Invalid page size: %d", got)).
		WithMessage("Page size must be at least 1").
		WithSuggestion("gridview view data.csv --page-size 25").
		Wrap(ErrBadPageSize)
}
