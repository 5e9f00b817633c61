package urlcheck_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/worker/urlcheck"
)

func TestParseMessage(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		original := domain.NewURLCheckEvent("https://example.org")
		data, err := json.Marshal(original)
		require.NoError(t, err)

		event, err := urlcheck.ParseMessage(domain.StreamMessage{
			ID:   "1700000000000-0",
			Data: string(data),
		})

		require.NoError(t, err)
		assert.Equal(t, original.EventID, event.EventID)
		assert.Equal(t, "https://example.org", event.URL)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := urlcheck.ParseMessage(domain.StreamMessage{
			ID:   "1700000000000-0",
			Data: "{not json",
		})

		assert.Error(t, err)
	})

	t.Run("empty url is rejected", func(t *testing.T) {
		data, err := json.Marshal(domain.URLCheckEvent{EventID: uuid.New()})
		require.NoError(t, err)

		_, err = urlcheck.ParseMessage(domain.StreamMessage{
			ID:   "1700000000000-0",
			Data: string(data),
		})

		assert.Error(t, err)
	})
}
