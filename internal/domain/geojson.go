package domain

import "time"

// GeoJSON структуры для выгрузки результатов проверки качества.
// Формат совместим с FeatureCollection, который потребляет карта.

type FeatureCollection struct {
	Timestamp string    `json:"_timestamp"`
	Type      string    `json:"type"`
	Features  []Feature `json:"features"`
}

type Feature struct {
	Type       string        `json:"type"`
	Properties QualityReport `json:"properties"`
	Geometry   Geometry      `json:"geometry"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
}

// NewFeatureCollection создаёт пустую коллекцию с текущей меткой времени.
func NewFeatureCollection(now time.Time) *FeatureCollection {
	return &FeatureCollection{
		Timestamp: now.Format(time.RFC3339),
		Type:      "FeatureCollection",
		Features:  []Feature{},
	}
}

// Append добавляет отчёт по месту как GeoJSON Feature.
func (fc *FeatureCollection) Append(p *Place, report QualityReport) {
	fc.Features = append(fc.Features, Feature{
		Type:       "Feature",
		Properties: report,
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{p.Lon, p.Lat},
		},
	})
}
