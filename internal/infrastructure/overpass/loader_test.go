package overpass_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/infrastructure/overpass"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overpass.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := overpass.NewLoader(zap.NewNop())

	t.Run("parses nodes ways and relations", func(t *testing.T) {
		path := writeExport(t, `{
			"elements": [
				{
					"type": "node", "id": 101, "lat": 52.52, "lon": 13.405,
					"tags": {"name": "Vegan Corner", "diet:vegan": "only"}
				},
				{
					"type": "way", "id": 202,
					"center": {"lat": 48.2, "lon": 16.37},
					"tags": {"diet:vegetarian": "yes"}
				},
				{
					"type": "relation", "id": 303,
					"center": {"lat": 41.38, "lon": 2.17},
					"tags": {"name": "Mercat", "diet:vegan": "yes"}
				}
			]
		}`)

		result, err := loader.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 3, result.ElementsRead)
		assert.Equal(t, 0, result.Skipped)
		require.Len(t, result.Records, 3)

		node := result.Records[0]
		assert.Equal(t, int64(101), node.OSMId)
		assert.Equal(t, domain.OSMTypeNode, node.OSMType)
		assert.Equal(t, "Vegan Corner", node.Name)
		assert.Equal(t, 52.52, node.Lat)

		way := result.Records[1]
		assert.Equal(t, domain.OSMTypeWay, way.OSMType)
		assert.Equal(t, 48.2, way.Lat)
		assert.Equal(t, 16.37, way.Lon)
		assert.Equal(t, "", way.Name)
	})

	t.Run("skips elements without tags or center", func(t *testing.T) {
		path := writeExport(t, `{
			"elements": [
				{"type": "node", "id": 1, "lat": 52.52, "lon": 13.405},
				{"type": "way", "id": 2, "tags": {"name": "No center"}},
				{"type": "area", "id": 3, "tags": {"name": "Unknown type"}},
				{"type": "node", "id": 4, "lat": 52.53, "lon": 13.41, "tags": {"name": "Kept"}}
			]
		}`)

		result, err := loader.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 4, result.ElementsRead)
		assert.Equal(t, 3, result.Skipped)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Kept", result.Records[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeExport(t, `{"elements": [`)
		_, err := loader.Load(path)
		assert.Error(t, err)
	})
}
