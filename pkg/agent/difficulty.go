package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/zubairatha/CalBridge/pkg/agent/prompt"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

var workKeywords = []string{
	"client", "manager", "team", "meeting", "deck", "proposal", "report",
	"prd", "sprint", "code", "repo", "deploy", "invoice", "expense",
	"contract", "nda", "design", "marketing", "sales", "finance", "legal",
	"roadmap", "okr",
}

var homeKeywords = []string{
	"mom", "dad", "family", "friend", "groceries", "laundry", "gym",
	"workout", "dentist", "doctor", "birthday", "rent", "clean",
	"apartment", "house",
}

// maxFallbackTitleLen bounds the title when the model returns none and the
// raw query stands in for it.
const maxFallbackTitleLen = 50

// Titles carry three to seven words. Shorter model titles give way to the
// query; longer ones are clipped.
const (
	minTitleWords = 3
	maxTitleWords = 7
)

// DifficultyAnalyzer classifies the task as simple or complex, picks a
// calendar, and generates a short title. The model proposes; hard rules
// dispose: a present duration forces simple, the duration passes through
// byte-identical, and calendar IDs outside the fetched set are substituted.
type DifficultyAnalyzer struct {
	llm    *llm.Client
	bridge *calbridge.Client
}

// NewDifficultyAnalyzer creates the classification stage.
func NewDifficultyAnalyzer(client *llm.Client, bridge *calbridge.Client) *DifficultyAnalyzer {
	return &DifficultyAnalyzer{llm: client, bridge: bridge}
}

// Classify analyzes the query and returns a classification. duration is the
// standardizer's ISO duration; the output duration is always this value,
// never what the model echoed back. A model failure degrades to the keyword
// heuristics rather than failing the run.
func (a *DifficultyAnalyzer) Classify(ctx context.Context, query models.UserQuery, duration *string) models.Classification {
	workID, homeID := a.resolveCalendars(ctx)

	durationStr := "null"
	if duration != nil {
		durationStr = *duration
	}
	messages := []llm.Message{
		{Role: "user", Content: prompt.Difficulty(query.Query, durationStr, orNull(workID), orNull(homeID))},
	}

	var raw models.Classification
	if err := a.llm.ChatJSON(ctx, messages, llm.TemperatureDifficulty, &raw); err != nil {
		slog.Warn("Difficulty classification failed, falling back to keyword heuristics", "error", err)
		return a.fallback(query, duration, workID, homeID)
	}

	return a.enforce(query, duration, raw, workID, homeID)
}

// fallback classifies without the model: a present duration means one
// sitting, so simple; otherwise complex. Calendar and title come from the
// query itself.
func (a *DifficultyAnalyzer) fallback(query models.UserQuery, duration *string, workID, homeID *string) models.Classification {
	out := models.Classification{Duration: duration}
	if duration != nil {
		out.Type = models.TaskTypeSimple
	} else {
		out.Type = models.TaskTypeComplex
	}
	out.Calendar = substituteCalendar(query.Query, workID, homeID)
	out.Title = normalizeTitle("", query.Query)
	return out
}

// enforce applies the post-model hard rules.
func (a *DifficultyAnalyzer) enforce(query models.UserQuery, duration *string, raw models.Classification, workID, homeID *string) models.Classification {
	out := models.Classification{Duration: duration}

	// Duration present means one sitting: always simple.
	if duration != nil {
		out.Type = models.TaskTypeSimple
	} else if raw.Type == models.TaskTypeSimple || raw.Type == models.TaskTypeComplex {
		out.Type = raw.Type
	} else {
		out.Type = models.TaskTypeComplex
	}

	out.Calendar = raw.Calendar
	if out.Calendar != nil && !matchesEither(*out.Calendar, workID, homeID) {
		out.Calendar = substituteCalendar(query.Query, workID, homeID)
		slog.Debug("Model returned unknown calendar, substituted by keyword match",
			"returned", *raw.Calendar)
	}

	out.Title = normalizeTitle(raw.Title, query.Query)
	return out
}

// normalizeTitle keeps the model's title when it has at least three words,
// substituting the truncated query when that gives more, and clips the
// result to seven words.
func normalizeTitle(title, query string) string {
	words := strings.Fields(title)
	if len(words) < minTitleWords {
		if queryWords := strings.Fields(truncate(query, maxFallbackTitleLen)); len(queryWords) > len(words) {
			words = queryWords
		}
	}
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " ")
}

// resolveCalendars fetches the bridge calendar list and locates writable
// Work and Home calendars: exact title match first, substring second. A
// bridge failure degrades to no calendars rather than failing the stage.
func (a *DifficultyAnalyzer) resolveCalendars(ctx context.Context) (workID, homeID *string) {
	calendars, err := a.bridge.Calendars(ctx)
	if err != nil {
		slog.Warn("Failed to fetch calendars, classifying without them", "error", err)
		return nil, nil
	}

	for _, cal := range calendars {
		if !cal.AllowsModifications {
			continue
		}
		title := strings.ToLower(strings.TrimSpace(cal.Title))
		if title == "work" && workID == nil {
			workID = ptr(cal.ID)
		} else if title == "home" && homeID == nil {
			homeID = ptr(cal.ID)
		}
	}
	for _, cal := range calendars {
		if !cal.AllowsModifications {
			continue
		}
		title := strings.ToLower(strings.TrimSpace(cal.Title))
		if workID == nil && strings.Contains(title, "work") {
			workID = ptr(cal.ID)
		} else if homeID == nil && strings.Contains(title, "home") {
			homeID = ptr(cal.ID)
		}
	}
	return workID, homeID
}

// substituteCalendar picks a calendar by query keywords when the model's
// choice was unusable. Preference order: keyword match, then work, then
// home, then none.
func substituteCalendar(query string, workID, homeID *string) *string {
	lower := strings.ToLower(query)
	hasWork := containsAny(lower, workKeywords)
	hasHome := containsAny(lower, homeKeywords)

	switch {
	case hasWork && workID != nil:
		return workID
	case hasHome && homeID != nil:
		return homeID
	case workID != nil:
		return workID
	case homeID != nil:
		return homeID
	default:
		return nil
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func matchesEither(id string, workID, homeID *string) bool {
	return (workID != nil && id == *workID) || (homeID != nil && id == *homeID)
}

func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func ptr(s string) *string { return &s }
