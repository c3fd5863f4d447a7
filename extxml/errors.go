package extxml

import "fmt"

// InvalidArgumentError reports malformed caller input, such as an unknown
// location kind or an out-of-range route flag.
type InvalidArgumentError struct{ Msg string }

func (e *InvalidArgumentError) Error() string { return e.Msg }

// ProtocolError reports a response document whose structure violates the
// ExtXML contract, such as an unexpected root tag or undecodable XML.
type ProtocolError struct{ Msg string }

func (e *ProtocolError) Error() string { return e.Msg }

// UnknownElementError reports a response element with no registered
// converter. Unknown elements abort the whole call; they are never
// silently dropped.
type UnknownElementError struct{ Tag string }

func (e *UnknownElementError) Error() string { return "unknown response element: " + e.Tag }

// MissingFieldError reports a required attribute or sub-element that is
// absent from an otherwise recognized element.
type MissingFieldError struct{ Field string }

func (e *MissingFieldError) Error() string { return "missing field: " + e.Field }

// MalformedTimeError reports a wire time string that does not match the
// [D]dHH:MM[:SS] encoding.
type MalformedTimeError struct{ Value string }

func (e *MalformedTimeError) Error() string { return fmt.Sprintf("malformed wire time %q", e.Value) }

// TransportError wraps a failure surfaced by the HTTP transport. The
// underlying cause is available through errors.Unwrap.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
