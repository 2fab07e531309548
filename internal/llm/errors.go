package llm

import (
	"fmt"
	"strings"
)

// MalformedResponseError reports a provider answer that did not conform to
// the schema. Stage names the recovery stage that produced the usable
// result and Defaulted lists the keys that were filled from defaults.
type MalformedResponseError struct {
	Stage     string
	Defaulted []string
	Cause     error
}

func (e *MalformedResponseError) Error() string {
	msg := fmt.Sprintf("malformed llm response (recovered by %s stage)", e.Stage)
	if len(e.Defaulted) > 0 {
		msg += ", defaulted: " + strings.Join(e.Defaulted, ", ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
