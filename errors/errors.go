package errors

import (
	"errors"
	"fmt"
)

// ParseError describes schema or library text that could not be turned into a tree.
type ParseError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
	// Source names the text the error was found in: "schema" or "libraries".
	Source string `json:"source,omitempty"`
	Rule   string `json:"-"`
	Err    error  `json:"-"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

func (a Location) String() string {
	return fmt.Sprintf("(line %d, column %d)", a.Line, a.Column)
}

// Errorf builds a ParseError. An error operand is kept as the wrapped cause.
func Errorf(format string, a ...interface{}) *ParseError {
	err := fmt.Errorf(format, a...)
	return &ParseError{
		Message: err.Error(),
		Err:     errors.Unwrap(err),
	}
}

func (err *ParseError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := "graphql: "
	if err.Source != "" {
		str += err.Source + ": "
	}
	str += err.Message
	for _, loc := range err.Locations {
		str += " " + loc.String()
	}
	return str
}

func (err *ParseError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

var _ error = &ParseError{}

// As reports whether err is, or wraps, a *ParseError and returns it.
func As(err error) (*ParseError, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
