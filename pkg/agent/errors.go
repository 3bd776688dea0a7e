package agent

import "fmt"

// Stage identifies a pipeline stage in errors and reports.
type Stage string

const (
	StageQuery        Stage = "UQ"
	StageExtractor    Stage = "SE"
	StageResolver     Stage = "AR"
	StageStandardizer Stage = "TS"
	StageDifficulty   Stage = "TD"
	StageDecomposer   Stage = "LD"
	StageAllotter     Stage = "TA"
	StageCreator      Stage = "EC"
)

// StageError wraps a failure with the stage that produced it. Stages fail
// loudly: there are no silent retries, the caller decides what to do.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// NewStageError wraps err with its originating stage.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
