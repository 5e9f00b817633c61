package repository

import "github.com/veggieplaces-microservice/internal/domain"

// OverpassRepository определяет источник данных Overpass (файловая выгрузка).
type OverpassRepository interface {
	// Load разбирает файл выгрузки Overpass в записи мест
	Load(path string) (*domain.OverpassLoadResult, error)
}
