package wsdl

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates extraction failures. Every failure is fatal: the
// extraction aborts on the first error in document order and no partial
// model is returned.
type ErrorKind string

const (
	// ErrParse wraps a well-formedness error from the XML decoder.
	ErrParse ErrorKind = "parse error"
	// ErrElementNotFound reports an absent structurally required element.
	ErrElementNotFound ErrorKind = "element not found"
	// ErrAttributeNotFound reports an absent structurally required attribute.
	ErrAttributeNotFound ErrorKind = "attribute not found"
	// ErrNotAnElement reports a node that was expected to be an element but
	// is text or a comment.
	ErrNotAnElement ErrorKind = "not an element"
	// ErrEmpty reports a container expected to hold at least one child
	// element.
	ErrEmpty ErrorKind = "empty element"
	// ErrUnsupported reports a declaration shape or attribute value the
	// extractor does not handle, such as a non-complexType type declaration
	// or a non-numeric occurrence bound.
	ErrUnsupported ErrorKind = "unsupported"
	// ErrDuplicate reports a name collision under strict naming.
	ErrDuplicate ErrorKind = "duplicate name"
)

// Error is the error type returned by extraction. Kind identifies the
// failure class and Name the element or attribute the extractor was
// resolving when it failed.
type Error struct {
	Kind ErrorKind
	Name string
	err  error
}

func (e *Error) Error() string {
	switch {
	case e.err != nil && e.Name != "":
		return fmt.Sprintf("wsdl: %s %q: %v", e.Kind, e.Name, e.err)
	case e.err != nil:
		return fmt.Sprintf("wsdl: %s: %v", e.Kind, e.err)
	case e.Name != "":
		return fmt.Sprintf("wsdl: %s %q", e.Kind, e.Name)
	default:
		return fmt.Sprintf("wsdl: %s", e.Kind)
	}
}

// Unwrap returns the underlying decoder error, if any.
func (e *Error) Unwrap() error { return e.err }

// KindOf returns the extraction error kind of err, or the empty kind when
// err does not wrap an extraction error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func parseError(err error) *Error {
	return &Error{Kind: ErrParse, err: err}
}

func elementNotFound(name string) *Error {
	return &Error{Kind: ErrElementNotFound, Name: name}
}

func attributeNotFound(name string) *Error {
	return &Error{Kind: ErrAttributeNotFound, Name: name}
}

func notAnElement(name string) *Error {
	return &Error{Kind: ErrNotAnElement, Name: name}
}

func emptyElement(name string) *Error {
	return &Error{Kind: ErrEmpty, Name: name}
}

func unsupported(name string, err error) *Error {
	return &Error{Kind: ErrUnsupported, Name: name, err: err}
}

func duplicateName(name string) *Error {
	return &Error{Kind: ErrDuplicate, Name: name}
}
