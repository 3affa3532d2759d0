// Package errs is the project-wide error toolkit, a thin veneer over
// cockroachdb/errors. Usecases attach sentinel marks with Mark; the error
// middleware pulls redacted stack lines for 5xx logging.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

func Newf(format string, args ...any) error { return cr.Newf(format, args...) }

// Wrap annotates err with msg, keeping the original cause chain. A nil err
// stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to a sentinel so errors.Is(err, markErr) holds while the
// underlying message and stack survive. Marking nil yields the sentinel
// itself. The sentinel is placed in the standard unwrap chain: cockroachdb
// marks alone are invisible to the standard library's errors.Is, which is
// what the handlers use for status mapping.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

func (e *marked) Unwrap() []error { return []error{e.cause, e.mark} }

func (e *marked) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

// ExtractStackLines renders err verbosely and returns at most maxLines lines,
// enough for a log entry without dumping whole stacks.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
