package llm

import "fmt"

// Stage identifies where a generation attempt failed: the network call, the
// JSON parse, or the schema check on parsed content.
type Stage string

const (
	StageTransport Stage = "transport"
	StageParse     Stage = "parse"
	StageSchema    Stage = "schema"
)

// GenerationError is a recoverable generation failure. Callers retry it a
// bounded number of times and then fall back to offline data; it is never
// surfaced raw to the end user.
type GenerationError struct {
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s failure: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func transportError(err error) error {
	return &GenerationError{Stage: StageTransport, Err: err}
}

func parseError(err error) error {
	return &GenerationError{Stage: StageParse, Err: err}
}

func schemaError(err error) error {
	return &GenerationError{Stage: StageSchema, Err: err}
}
