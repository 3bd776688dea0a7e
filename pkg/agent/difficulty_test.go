package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// bridgeStub serves /calendars with the given list.
func bridgeStub(t *testing.T, calendars []calbridge.Calendar) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calendars", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(calendars))
	}))
}

func defaultCalendars() []calbridge.Calendar {
	return []calbridge.Calendar{
		{ID: "work-1", Title: "Work", AllowsModifications: true},
		{ID: "home-1", Title: "Home", AllowsModifications: true},
		{ID: "holidays", Title: "US Holidays", AllowsModifications: false},
	}
}

func TestClassifyDurationForcesSimple(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()
	// The model disagrees on both type and duration; the hard rules win.
	model := llmStub(t, `{"calendar": "work-1", "type": "complex", "title": "Prepare the deck", "duration": "PT5H"}`)
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
	duration := "PT2H"
	cls := analyzer.Classify(context.Background(), models.UserQuery{
		Query:    "work on the client deck for 2 hours tomorrow",
		Timezone: "America/New_York",
	}, &duration)

	assert.Equal(t, models.TaskTypeSimple, cls.Type)
	require.NotNil(t, cls.Duration)
	assert.Equal(t, "PT2H", *cls.Duration)
	require.NotNil(t, cls.Calendar)
	assert.Equal(t, "work-1", *cls.Calendar)
	assert.Equal(t, "Prepare the deck", cls.Title)
}

func TestClassifyUnknownCalendarSubstituted(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()
	model := llmStub(t, `{"calendar": "made-up-id", "type": "simple", "title": "Set up the meeting", "duration": null}`)
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
	cls := analyzer.Classify(context.Background(), models.UserQuery{
		Query:    "set up the team meeting",
		Timezone: "America/New_York",
	}, nil)

	require.NotNil(t, cls.Calendar)
	assert.Equal(t, "work-1", *cls.Calendar)
}

func TestClassifyInvalidTypeDefaultsComplex(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()
	model := llmStub(t, `{"calendar": "home-1", "type": "medium", "title": "Plan the trip", "duration": null}`)
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
	cls := analyzer.Classify(context.Background(), models.UserQuery{
		Query:    "plan the family trip",
		Timezone: "America/New_York",
	}, nil)
	assert.Equal(t, models.TaskTypeComplex, cls.Type)
}

func TestClassifyEmptyTitleFallsBackToQuery(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()
	model := llmStub(t, `{"calendar": "home-1", "type": "simple", "title": "  ", "duration": null}`)
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
	longQuery := strings.Repeat("clean the apartment ", 5)
	cls := analyzer.Classify(context.Background(), models.UserQuery{
		Query:    longQuery,
		Timezone: "America/New_York",
	}, nil)
	// Truncated to length, then clipped to the word bound.
	assert.Equal(t, "clean the apartment clean the apartment clean", cls.Title)
}

func TestClassifyTitleWordBounds(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()

	t.Run("long titles clip to seven words", func(t *testing.T) {
		model := llmStub(t, `{"calendar": "work-1", "type": "simple", "title": "Prepare the quarterly board deck for the leadership offsite", "duration": null}`)
		defer model.Close()

		analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
		cls := analyzer.Classify(context.Background(), models.UserQuery{
			Query:    "prepare the board deck",
			Timezone: "America/New_York",
		}, nil)
		assert.Equal(t, "Prepare the quarterly board deck for the", cls.Title)
	})

	t.Run("short titles give way to the query", func(t *testing.T) {
		model := llmStub(t, `{"calendar": "work-1", "type": "simple", "title": "Team meeting", "duration": null}`)
		defer model.Close()

		analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
		cls := analyzer.Classify(context.Background(), models.UserQuery{
			Query:    "set up the team meeting",
			Timezone: "America/New_York",
		}, nil)
		assert.Equal(t, "set up the team meeting", cls.Title)
	})
}

func TestClassifyModelFailureFallsBack(t *testing.T) {
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()
	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))

	t.Run("duration present degrades to simple", func(t *testing.T) {
		duration := "PT1H"
		cls := analyzer.Classify(context.Background(), models.UserQuery{
			Query:    "send the signed nda to the client",
			Timezone: "America/New_York",
		}, &duration)

		assert.Equal(t, models.TaskTypeSimple, cls.Type)
		require.NotNil(t, cls.Calendar)
		assert.Equal(t, "work-1", *cls.Calendar)
		assert.Equal(t, "send the signed nda to the client", cls.Title)
		require.NotNil(t, cls.Duration)
		assert.Equal(t, "PT1H", *cls.Duration)
	})

	t.Run("no duration degrades to complex", func(t *testing.T) {
		cls := analyzer.Classify(context.Background(), models.UserQuery{
			Query:    "clean out the apartment with dad",
			Timezone: "America/New_York",
		}, nil)

		assert.Equal(t, models.TaskTypeComplex, cls.Type)
		require.NotNil(t, cls.Calendar)
		assert.Equal(t, "home-1", *cls.Calendar)
	})
}

func TestClassifyBridgeDownDegrades(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bridge down", http.StatusServiceUnavailable)
	}))
	defer bridge.Close()
	model := llmStub(t, `{"calendar": "whatever", "type": "simple", "title": "Call mom tonight", "duration": null}`)
	defer model.Close()

	analyzer := NewDifficultyAnalyzer(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL))
	cls := analyzer.Classify(context.Background(), models.UserQuery{
		Query:    "call mom tonight",
		Timezone: "America/New_York",
	}, nil)
	// No calendars known and the model's ID is unusable: no calendar at all.
	assert.Nil(t, cls.Calendar)
}

func TestResolveCalendarsPreference(t *testing.T) {
	// Exact title beats substring; read-only calendars never qualify.
	bridge := bridgeStub(t, []calbridge.Calendar{
		{ID: "ro-work", Title: "Work", AllowsModifications: false},
		{ID: "sub-work", Title: "My Work Projects", AllowsModifications: true},
		{ID: "exact-work", Title: "work", AllowsModifications: true},
		{ID: "sub-home", Title: "Home Improvement", AllowsModifications: true},
	})
	defer bridge.Close()

	analyzer := NewDifficultyAnalyzer(nil, calbridge.NewClient(bridge.URL))
	workID, homeID := analyzer.resolveCalendars(context.Background())

	require.NotNil(t, workID)
	assert.Equal(t, "exact-work", *workID)
	require.NotNil(t, homeID)
	assert.Equal(t, "sub-home", *homeID)
}

func TestSubstituteCalendar(t *testing.T) {
	work, home := "work-1", "home-1"

	tests := []struct {
		name   string
		query  string
		workID *string
		homeID *string
		want   *string
	}{
		{name: "work keyword", query: "sprint planning session", workID: &work, homeID: &home, want: &work},
		{name: "home keyword", query: "pick up groceries", workID: &work, homeID: &home, want: &home},
		{name: "no keyword defaults to work", query: "read a book", workID: &work, homeID: &home, want: &work},
		{name: "no keyword no work falls to home", query: "read a book", workID: nil, homeID: &home, want: &home},
		{name: "nothing available", query: "read a book", workID: nil, homeID: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := substituteCalendar(tt.query, tt.workID, tt.homeID)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
