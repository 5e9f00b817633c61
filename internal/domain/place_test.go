package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veggieplaces-microservice/internal/domain"
)

func TestEvaluate(t *testing.T) {
	t.Run("vegetarian yes is eligible", func(t *testing.T) {
		payload := domain.Evaluate(mustTagSet(t, map[string]string{
			"diet:vegetarian": "yes",
		}))

		assert.True(t, payload.Eligible)
		assert.Equal(t, domain.DietVegetarianYes, payload.Classification)
	})

	t.Run("attributes computed even when not eligible", func(t *testing.T) {
		payload := domain.Evaluate(mustTagSet(t, map[string]string{
			"cuisine": "italian",
		}))

		assert.False(t, payload.Eligible)
		assert.Equal(t, domain.DietNone, payload.Classification)
		require.NotNil(t, payload.Attributes.Cuisine)
		assert.Equal(t, "italian", *payload.Attributes.Cuisine)
	})

	t.Run("empty tag set", func(t *testing.T) {
		payload := domain.Evaluate(mustTagSet(t, map[string]string{}))

		assert.False(t, payload.Eligible)
		assert.Equal(t, domain.DietNone, payload.Classification)
		assert.Nil(t, payload.Attributes.Cuisine)
		assert.Nil(t, payload.Attributes.Address)
		assert.Nil(t, payload.Attributes.OpeningHours)
	})

	t.Run("idempotent for the same tag set", func(t *testing.T) {
		tags := mustTagSet(t, map[string]string{
			"diet:vegan":    "limited",
			"cuisine":       "indian",
			"contact:phone": "+49 30 1234567",
			"addr:city":     "Berlin",
		})

		first := domain.Evaluate(tags)
		second := domain.Evaluate(tags)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON)
	})
}

func TestDisplayName(t *testing.T) {
	t.Run("name tag wins", func(t *testing.T) {
		name, defined := domain.DisplayName(mustTagSet(t, map[string]string{
			"name":    "Grüner Garten",
			"name:en": "Green Garden",
		}), domain.OSMTypeNode, 42)

		assert.True(t, defined)
		assert.Equal(t, "Grüner Garten", name)
	})

	t.Run("english name as fallback", func(t *testing.T) {
		name, defined := domain.DisplayName(mustTagSet(t, map[string]string{
			"name:en": "Green Garden",
		}), domain.OSMTypeNode, 42)

		assert.True(t, defined)
		assert.Equal(t, "Green Garden", name)
	})

	t.Run("vending machines get a generic name", func(t *testing.T) {
		name, defined := domain.DisplayName(mustTagSet(t, map[string]string{
			"amenity": "vending_machine",
		}), domain.OSMTypeNode, 42)

		assert.True(t, defined)
		assert.Equal(t, "vending machine", name)
	})

	t.Run("built from type and id when nothing else exists", func(t *testing.T) {
		name, defined := domain.DisplayName(mustTagSet(t, map[string]string{}),
			domain.OSMTypeWay, 123456)

		assert.False(t, defined)
		assert.Equal(t, "way 123456", name)
	})

	t.Run("double quotes are replaced", func(t *testing.T) {
		name, _ := domain.DisplayName(mustTagSet(t, map[string]string{
			"name": `Cafe "Vegan"`,
		}), domain.OSMTypeNode, 1)

		assert.Equal(t, "Cafe ”Vegan”", name)
	})
}

func TestPlace_TagSet(t *testing.T) {
	t.Run("nil tags map fails fast", func(t *testing.T) {
		place := &domain.Place{OSMId: 1, OSMType: domain.OSMTypeNode}
		_, err := place.TagSet()
		assert.ErrorIs(t, err, domain.ErrInvalidTagSet)
	})

	t.Run("tags round trip", func(t *testing.T) {
		place := &domain.Place{Tags: map[string]string{"diet:vegan": "only"}}
		tags, err := place.TagSet()
		require.NoError(t, err)
		assert.Equal(t, domain.DietVeganOnly, domain.Classify(tags))
	})
}
