// Package fetxerr classifies boundary errors into a combinable bitset,
// so that a format error discovered while reading a file that then also
// fails to close is reported as a single FFormat|FClose value. It wraps
// ordinary errors rather than replacing them: the underlying error stays
// reachable through errors.Is/As, the Kind is an additional taxonomy for
// hosts that dispatch on failure class.
package fetxerr

import (
	"errors"
	"strings"
)

// Kind is one or more boundary failure classes OR-ed together.
type Kind uint8

const (
	Param Kind = 1 << iota
	Alloc
	FOpen
	FClose
	FFormat
	IO
	Timeout
)

// None is the zero Kind: no classified failure.
const None Kind = 0

var kindNames = []struct {
	kind Kind
	name string
}{
	{Param, "PARAM"},
	{Alloc, "ALLOC"},
	{FOpen, "FOPEN"},
	{FFormat, "FFORMAT"},
	{FClose, "FCLOSE"},
	{IO, "IO"},
	{Timeout, "TIMEOUT"},
}

func (k Kind) String() string {
	if k == None {
		return "NONE"
	}
	var parts []string
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Error attaches a Kind to an underlying error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with kind. A nil err with a non-None kind still produces
// an error (the kind alone is the failure, e.g. a bare FClose).
func New(kind Kind, err error) error {
	if err == nil {
		if kind == None {
			return nil
		}
		err = errors.New("operation failed")
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf walks err's wrap chain and ORs together every Kind found.
// An unclassified (or nil) error yields None.
func KindOf(err error) Kind {
	var k Kind
	for err != nil {
		var e *Error
		if errors.As(err, &e) {
			k |= e.Kind
			err = e.Err
			continue
		}
		err = errors.Unwrap(err)
	}
	return k
}
