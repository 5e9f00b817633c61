package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veggieplaces-microservice/internal/domain"
)

func TestNormalize(t *testing.T) {
	t.Run("all fields absent for empty tag set", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{}))

		assert.Nil(t, attrs.Cuisine)
		assert.Nil(t, attrs.Address)
		assert.Nil(t, attrs.OpeningHours)
		assert.Nil(t, attrs.Phone)
		assert.Nil(t, attrs.Email)
		assert.Nil(t, attrs.Website)
		assert.Nil(t, attrs.Facebook)
		assert.Nil(t, attrs.Instagram)
	})

	t.Run("values are copied verbatim", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{
			"cuisine":           "italian;pizza",
			"opening_hours":     "Mo-Fr 10:00-20:00; Sa 10:00-14:00",
			"contact:phone":     "+49 30 1234567",
			"contact:email":     "info@example.org",
			"contact:website":   "https://example.org",
			"contact:facebook":  "https://www.facebook.com/example",
			"contact:instagram": "https://www.instagram.com/example",
		}))

		require.NotNil(t, attrs.Cuisine)
		assert.Equal(t, "italian;pizza", *attrs.Cuisine)
		require.NotNil(t, attrs.OpeningHours)
		assert.Equal(t, "Mo-Fr 10:00-20:00; Sa 10:00-14:00", *attrs.OpeningHours)
		require.NotNil(t, attrs.Phone)
		assert.Equal(t, "+49 30 1234567", *attrs.Phone)
		require.NotNil(t, attrs.Email)
		assert.Equal(t, "info@example.org", *attrs.Email)
		require.NotNil(t, attrs.Website)
		assert.Equal(t, "https://example.org", *attrs.Website)
		require.NotNil(t, attrs.Facebook)
		require.NotNil(t, attrs.Instagram)
	})

	t.Run("plain contact keys used as fallback", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{
			"phone":   "+44 20 84527891",
			"email":   "mail@example.org",
			"website": "https://example.org",
		}))

		require.NotNil(t, attrs.Phone)
		assert.Equal(t, "+44 20 84527891", *attrs.Phone)
		require.NotNil(t, attrs.Email)
		require.NotNil(t, attrs.Website)
	})

	t.Run("contact namespace preferred over plain key", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{
			"contact:phone": "+49 30 1111111",
			"phone":         "+49 30 2222222",
		}))

		require.NotNil(t, attrs.Phone)
		assert.Equal(t, "+49 30 1111111", *attrs.Phone)
	})

	t.Run("address merged from addr tags", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{
			"addr:street":      "Hauptstraße",
			"addr:housenumber": "12",
			"addr:city":        "Berlin",
			"addr:postcode":    "10115",
		}))

		require.NotNil(t, attrs.Address)
		assert.Equal(t, "Hauptstraße", *attrs.Address.Street)
		assert.Equal(t, "12", *attrs.Address.Housenumber)
		assert.Equal(t, "Berlin", *attrs.Address.City)
		assert.Equal(t, "10115", *attrs.Address.Postcode)
		assert.Nil(t, attrs.Address.Suburb)
	})

	t.Run("covid19 hours preferred when they carry a schedule", func(t *testing.T) {
		attrs := domain.Normalize(mustTagSet(t, map[string]string{
			"opening_hours":         "Mo-Su 10:00-22:00",
			"opening_hours:covid19": "Mo-Fr 12:00-18:00",
		}))

		require.NotNil(t, attrs.OpeningHours)
		assert.Equal(t, "Mo-Fr 12:00-18:00", *attrs.OpeningHours)
	})

	t.Run("covid19 marker values fall back to regular hours", func(t *testing.T) {
		for _, marker := range []string{"same", "restricted"} {
			attrs := domain.Normalize(mustTagSet(t, map[string]string{
				"opening_hours":         "Mo-Su 10:00-22:00",
				"opening_hours:covid19": marker,
			}))

			require.NotNil(t, attrs.OpeningHours)
			assert.Equal(t, "Mo-Su 10:00-22:00", *attrs.OpeningHours)
		}
	})
}
