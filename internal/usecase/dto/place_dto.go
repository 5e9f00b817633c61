package dto

import "github.com/veggieplaces-microservice/internal/domain"

// EvaluateRequest - запрос на оценку одного набора тегов.
type EvaluateRequest struct {
	Tags map[string]string `json:"tags" validate:"required"`
}

// EvaluateBatchRequest - пакетная оценка; порядок результатов совпадает с порядком входа.
type EvaluateBatchRequest struct {
	Places []EvaluateRequest `json:"places" validate:"required,min=1,max=1000,dive"`
}

// EvaluateBatchResponse - результаты пакетной оценки.
type EvaluateBatchResponse struct {
	Payloads []domain.DisplayPayload `json:"payloads"`
	Total    int                     `json:"total"`
}

// RadiusPlacesRequest - поиск подходящих мест в радиусе.
type RadiusPlacesRequest struct {
	Lat             float64  `json:"lat" validate:"required"`
	Lon             float64  `json:"lon" validate:"required"`
	RadiusKm        float64  `json:"radius_km" validate:"required"`
	Classifications []string `json:"classifications,omitempty"`
	Limit           int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// PlaceWithPayload - место вместе с его display payload и расстоянием до точки запроса.
type PlaceWithPayload struct {
	ID             int64                 `json:"id"`
	OSMId          int64                 `json:"osm_id"`
	OSMType        string                `json:"osm_type"`
	Name           string                `json:"name"`
	Lat            float64               `json:"lat"`
	Lon            float64               `json:"lon"`
	Distance       float64               `json:"distance"` // метры
	Payload        domain.DisplayPayload `json:"payload"`
}

// RadiusPlacesResponse - ответ поиска в радиусе.
type RadiusPlacesResponse struct {
	Places []PlaceWithPayload `json:"places"`
	Total  int                `json:"total"`
}
