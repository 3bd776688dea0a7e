package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserQuery(t *testing.T) {
	t.Run("valid query and timezone", func(t *testing.T) {
		uq, loc, err := ParseUserQuery("  finish the report tomorrow  ", "Europe/Berlin", "America/New_York")
		require.NoError(t, err)
		assert.Equal(t, "finish the report tomorrow", uq.Query)
		assert.Equal(t, "Europe/Berlin", uq.Timezone)
		assert.Equal(t, "Europe/Berlin", loc.String())
	})

	t.Run("empty timezone falls back to default", func(t *testing.T) {
		uq, loc, err := ParseUserQuery("call mom", "", "America/New_York")
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", uq.Timezone)
		assert.Equal(t, "America/New_York", loc.String())
	})

	t.Run("blank query rejected", func(t *testing.T) {
		_, _, err := ParseUserQuery("   ", "America/New_York", "America/New_York")
		require.Error(t, err)

		var stageErr *StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, StageQuery, stageErr.Stage)
	})

	t.Run("unknown timezone rejected", func(t *testing.T) {
		_, _, err := ParseUserQuery("call mom", "Mars/Olympus_Mons", "America/New_York")
		require.Error(t, err)

		var stageErr *StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, StageQuery, stageErr.Stage)
	})
}
