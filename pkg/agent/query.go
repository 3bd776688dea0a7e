package agent

import (
	"errors"
	"strings"
	"time"

	"github.com/zubairatha/CalBridge/pkg/models"
)

// ParseUserQuery validates raw pipeline input. The query must be non-empty
// after trimming and the timezone must be a loadable IANA name; an empty
// timezone falls back to defaultTimezone.
func ParseUserQuery(query, timezone, defaultTimezone string) (models.UserQuery, *time.Location, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return models.UserQuery{}, nil, NewStageError(StageQuery, errors.New("query must not be empty"))
	}

	tz := strings.TrimSpace(timezone)
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return models.UserQuery{}, nil, NewStageError(StageQuery, err)
	}

	return models.UserQuery{Query: trimmed, Timezone: tz}, loc, nil
}
