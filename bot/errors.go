package bot

import "fmt"

// FailKind is the closed set of failure categories a handler can
// surface. The dispatch boundary turns any of them into a textual
// reply; internal callers can still branch on the kind.
type FailKind int

const (
	FailValidation FailKind = iota
	FailAuthorization
	FailTransport
	FailExternalAPI
)

func (k FailKind) String() string {
	switch k {
	case FailAuthorization:
		return "authorization"
	case FailTransport:
		return "transport"
	case FailExternalAPI:
		return "external_api"
	default:
		return "validation"
	}
}

type Error struct {
	Kind FailKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...any) error {
	return &Error{Kind: FailValidation, Msg: fmt.Sprintf(format, args...)}
}

func TransportErr(msg string, err error) error {
	return &Error{Kind: FailTransport, Msg: msg, Err: err}
}

func ExternalAPIf(format string, args ...any) error {
	return &Error{Kind: FailExternalAPI, Msg: fmt.Sprintf(format, args...)}
}
