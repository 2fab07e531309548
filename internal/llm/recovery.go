package llm

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Stage is one step of the response recovery chain. Decode returns a JSON
// object or an error when the stage cannot make sense of raw.
type Stage interface {
	Name() string
	Decode(raw string) ([]byte, error)
}

var (
	errNotObject  = errors.New("response is not a JSON object")
	errNoEmbedded = errors.New("no JSON object found in response")
)

// DirectStage accepts a response that is already a JSON object.
type DirectStage struct{}

func (DirectStage) Name() string { return "direct" }

func (DirectStage) Decode(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		return nil, errNotObject
	}
	return []byte(raw), nil
}

// EmbeddedStage removes code fences and surrounding prose and decodes the
// JSON object found inside.
type EmbeddedStage struct{}

func (EmbeddedStage) Name() string { return "embedded" }

func (EmbeddedStage) Decode(raw string) ([]byte, error) {
	for _, candidate := range []string{CleanJSON(raw), embeddedObject(CleanJSON(raw)), embeddedObject(raw)} {
		if candidate == "" {
			continue
		}
		if gjson.Valid(candidate) && gjson.Parse(candidate).IsObject() {
			return []byte(candidate), nil
		}
	}
	return nil, errNoEmbedded
}

// DefaultStage always succeeds with the declared defaults.
type DefaultStage struct {
	Defaults []byte
}

func (DefaultStage) Name() string { return "default" }

func (s DefaultStage) Decode(string) ([]byte, error) {
	return s.Defaults, nil
}

// Chain runs stages in order and returns the first success along with the
// name of the stage that produced it.
type Chain []Stage

func (c Chain) Decode(raw string) ([]byte, string, error) {
	var errs []error
	for _, stage := range c {
		out, err := stage.Decode(raw)
		if err == nil {
			return out, stage.Name(), errors.Join(errs...)
		}
		errs = append(errs, err)
	}
	return nil, "", errors.Join(errs...)
}
