package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

// LimitPlaces - верхняя граница выборки при поиске в радиусе.
const LimitPlaces = 500

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `
		SELECT
			id, osm_id, osm_type, name, lat, lon, classification, tags,
			created_at, updated_at
		FROM places
		WHERE id = $1
	`

	place, err := r.scanPlace(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return place, nil
}

func (r *placeRepository) GetNearby(
	ctx context.Context,
	lat, lon, radiusKm float64,
	classifications []string,
) ([]*domain.Place, error) {
	// Haversine прямо в SQL: таблица небольшая, PostGIS здесь не нужен
	query := `
		SELECT
			id, osm_id, osm_type, name, lat, lon, classification, tags,
			created_at, updated_at
		FROM places
		WHERE 2 * 6371 * asin(sqrt(
			power(sin(radians(lat - $1) / 2), 2) +
			cos(radians($1)) * cos(radians(lat)) *
			power(sin(radians(lon - $2) / 2), 2)
		)) <= $3
	`

	args := []interface{}{lat, lon, radiusKm}
	argIdx := 4

	if len(classifications) > 0 {
		query += fmt.Sprintf(" AND classification = ANY($%d)", argIdx)
		args = append(args, pq.Array(classifications))
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY 2 * 6371 * asin(sqrt(power(sin(radians(lat - $1) / 2), 2) + cos(radians($1)) * cos(radians(lat)) * power(sin(radians(lon - $2) / 2), 2))) LIMIT $%d", argIdx)
	args = append(args, LimitPlaces)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get nearby places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		place, err := r.scanPlace(rows)
		if err != nil {
			r.logger.Error("Failed to scan place", zap.Error(err))
			continue
		}
		places = append(places, place)
	}

	return places, nil
}

func (r *placeRepository) GetAll(ctx context.Context) ([]*domain.Place, error) {
	query := `
		SELECT
			id, osm_id, osm_type, name, lat, lon, classification, tags,
			created_at, updated_at
		FROM places
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get all places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		place, err := r.scanPlace(rows)
		if err != nil {
			r.logger.Error("Failed to scan place", zap.Error(err))
			continue
		}
		places = append(places, place)
	}

	return places, nil
}

func (r *placeRepository) Upsert(ctx context.Context, place *domain.Place) error {
	tagsJSON, err := json.Marshal(place.Tags)
	if err != nil {
		r.logger.Error("Failed to marshal tags", zap.Int64("osm_id", place.OSMId), zap.Error(err))
		return errors.ErrDatabaseError
	}

	query := `
		INSERT INTO places (osm_id, osm_type, name, lat, lon, classification, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (osm_type, osm_id) DO UPDATE SET
			name = EXCLUDED.name,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			classification = EXCLUDED.classification,
			tags = EXCLUDED.tags,
			updated_at = now()
	`

	_, err = r.db.ExecContext(ctx, query,
		place.OSMId, place.OSMType, place.Name,
		place.Lat, place.Lon, string(place.Classification), tagsJSON,
	)
	if err != nil {
		r.logger.Error("Failed to upsert place",
			zap.Int64("osm_id", place.OSMId),
			zap.String("osm_type", place.OSMType),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) UpsertBatch(ctx context.Context, places []*domain.Place) (int, error) {
	saved := 0
	for _, place := range places {
		if err := r.Upsert(ctx, place); err != nil {
			r.logger.Warn("Skipping place that failed to upsert",
				zap.Int64("osm_id", place.OSMId),
				zap.Error(err))
			continue
		}
		saved++
	}
	return saved, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *placeRepository) scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	var classification string
	var tagsJSON []byte

	err := row.Scan(
		&place.ID, &place.OSMId, &place.OSMType, &place.Name,
		&place.Lat, &place.Lon, &classification, &tagsJSON,
		&place.CreatedAt, &place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.Classification = domain.DietClassification(classification)

	if len(tagsJSON) > 0 {
		tags := make(map[string]string)
		if err := json.Unmarshal(tagsJSON, &tags); err != nil {
			r.logger.Warn("Failed to unmarshal tags", zap.Int64("id", place.ID), zap.Error(err))
		} else {
			place.Tags = tags
		}
	}

	return &place, nil
}
