package dto

// QualityRunResponse - сводка по запуску проверки качества.
type QualityRunResponse struct {
	PlacesChecked   int `json:"places_checked"`
	PlacesWithIssue int `json:"places_with_issue"`
	URLsQueued      int `json:"urls_queued"`
}

// ImportResponse - сводка по импорту overpass файла.
type ImportResponse struct {
	ElementsRead int `json:"elements_read"`
	Imported     int `json:"imported"`
	Skipped      int `json:"skipped"`
}
