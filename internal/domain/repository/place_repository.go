package repository

import (
	"context"

	"github.com/veggieplaces-microservice/internal/domain"
)

// PlaceRepository определяет методы доступа к хранилищу мест.
type PlaceRepository interface {
	// GetByID возвращает место по внутреннему идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Place, error)

	// GetNearby возвращает места в радиусе radiusKm от точки,
	// опционально отфильтрованные по классификациям
	GetNearby(ctx context.Context, lat, lon, radiusKm float64, classifications []string) ([]*domain.Place, error)

	// GetAll возвращает все сохранённые места (для проверки качества)
	GetAll(ctx context.Context) ([]*domain.Place, error)

	// Upsert сохраняет место, обновляя запись с тем же (osm_type, osm_id)
	Upsert(ctx context.Context, place *domain.Place) error

	// UpsertBatch сохраняет пакет мест, возвращает количество сохранённых
	UpsertBatch(ctx context.Context, places []*domain.Place) (int, error)
}
