package agent

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/zubairatha/CalBridge/pkg/agent/prompt"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// AbsoluteResolver turns verbatim time phrases into one concrete calendar
// window, expressed as canonical "Month DD, YYYY HH:MM am/pm" strings.
// Duration is copied through untouched.
type AbsoluteResolver struct {
	llm *llm.Client
}

// NewAbsoluteResolver creates the resolution stage.
func NewAbsoluteResolver(client *llm.Client) *AbsoluteResolver {
	return &AbsoluteResolver{llm: client}
}

// Resolve maps slots to an absolute window under the given clock. On model
// failure it degrades to the no-time-info window (now, end of today) with
// the duration preserved, matching what the prompt's rule 4 would produce.
func (r *AbsoluteResolver) Resolve(ctx context.Context, slots models.Slots, clock *ClockContext) models.Resolution {
	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		// Slots is three optional strings; marshaling cannot realistically
		// fail, but degrade the same way if it does.
		return r.fallback(slots, clock)
	}

	rc := prompt.ResolverContext{
		NowISO:     clock.NowISO,
		Timezone:   clock.Timezone,
		TodayHuman: clock.TodayHuman,
		EndOfToday: clock.EndOfToday,
		EndOfWeek:  clock.EndOfWeek,
		EndOfMonth: clock.EndOfMonth,
		NextMonday: clock.NextMonday,
	}
	if occ, err := json.Marshal(clock.NextOccurrences); err == nil {
		rc.NextOccurrencesJSON = string(occ)
	}

	messages := []llm.Message{
		{Role: "user", Content: prompt.AbsoluteResolver(rc, string(slotsJSON))},
	}

	var resolution models.Resolution
	if err := r.llm.ChatJSON(ctx, messages, llm.TemperatureResolver, &resolution); err != nil {
		slog.Warn("Absolute resolution failed, falling back to today's window", "error", err)
		return r.fallback(slots, clock)
	}
	if resolution.StartText == "" || resolution.EndText == "" {
		slog.Warn("Absolute resolution returned empty anchors, falling back to today's window")
		return r.fallback(slots, clock)
	}
	return resolution
}

func (r *AbsoluteResolver) fallback(slots models.Slots, clock *ClockContext) models.Resolution {
	return models.Resolution{
		StartText: clock.NowCanonical(),
		EndText:   clock.EndOfToday,
		Duration:  slots.Duration,
	}
}
