// Package agent implements the staged pipeline that turns a natural-language
// utterance into a classified, time-bounded task: slot extraction, absolute
// resolution, time standardization, difficulty classification, and
// decomposition for complex tasks. Scheduling and event creation live in
// their own packages; this one stops at "what should go on the calendar".
package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// StageOutputs collects every intermediate artifact of one pipeline run.
// Decomposition is nil for simple tasks.
type StageOutputs struct {
	Query          models.UserQuery      `json:"query"`
	Slots          models.Slots          `json:"slots"`
	Resolution     models.Resolution     `json:"resolution"`
	Standardized   models.Standardized   `json:"standardized"`
	Classification models.Classification `json:"classification"`
	Decomposition  *models.Decomposition `json:"decomposition,omitempty"`

	// Clock is the frozen view of now the run was resolved against.
	Clock *ClockContext `json:"-"`
}

// Pipeline wires the understanding stages together. The clock is injectable
// so runs are reproducible under test.
type Pipeline struct {
	extractor    *SlotExtractor
	resolver     *AbsoluteResolver
	standardizer *TimeStandardizer
	difficulty   *DifficultyAnalyzer
	decomposer   *Decomposer

	defaultTimezone string
	now             func() time.Time
}

// NewPipeline assembles the pipeline from its clients. defaultTimezone is
// used when a request does not carry one.
func NewPipeline(llmClient *llm.Client, bridge *calbridge.Client, defaultTimezone string) *Pipeline {
	return &Pipeline{
		extractor:       NewSlotExtractor(llmClient),
		resolver:        NewAbsoluteResolver(llmClient),
		standardizer:    NewTimeStandardizer(),
		difficulty:      NewDifficultyAnalyzer(llmClient, bridge),
		decomposer:      NewDecomposer(llmClient),
		defaultTimezone: defaultTimezone,
		now:             time.Now,
	}
}

// WithClock overrides the pipeline clock. Test hook.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run executes the understanding stages in order. Each stage receives the
// previous stage's output. Only invalid input fails the run; model failures
// degrade stage by stage to safe defaults.
func (p *Pipeline) Run(ctx context.Context, query, timezone string) (*StageOutputs, error) {
	uq, loc, err := ParseUserQuery(query, timezone, p.defaultTimezone)
	if err != nil {
		return nil, err
	}
	clock := NewClockContext(p.now(), loc)

	out := &StageOutputs{Query: uq, Clock: clock}

	out.Slots = p.extractor.Extract(ctx, uq)
	out.Resolution = p.resolver.Resolve(ctx, out.Slots, clock)

	out.Standardized = p.standardizer.Standardize(out.Resolution, clock)
	out.Classification = p.difficulty.Classify(ctx, uq, out.Standardized.Duration)

	if out.Classification.Type == models.TaskTypeComplex {
		decomposition, err := p.decomposer.Decompose(ctx, out.Classification)
		if err != nil {
			return nil, err
		}
		out.Decomposition = &decomposition
	}

	slog.Info("Pipeline run completed",
		"query", uq.Query,
		"type", out.Classification.Type,
		"window_start", out.Standardized.Start,
		"window_end", out.Standardized.End)

	return out, nil
}
