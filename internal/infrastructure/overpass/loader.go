package overpass

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// element - элемент ответа Overpass API.
// Для way/relation координаты берутся из center (out center).
type element struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Lat    float64 `json:"lat,omitempty"`
	Lon    float64 `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type export struct {
	Elements []element `json:"elements"`
}

type loader struct {
	logger *zap.Logger
}

// NewLoader создаёт файловый источник данных Overpass.
func NewLoader(logger *zap.Logger) repository.OverpassRepository {
	return &loader{logger: logger}
}

// Load разбирает JSON выгрузку Overpass в записи мест.
// Элементы без координат или без тегов пропускаются и попадают в Skipped.
func (l *loader) Load(path string) (*domain.OverpassLoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overpass export: %w", err)
	}

	var exp export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse overpass export: %w", err)
	}

	result := &domain.OverpassLoadResult{
		ElementsRead: len(exp.Elements),
	}

	for _, el := range exp.Elements {
		rec, ok := l.toRecord(el)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	l.logger.Info("Overpass export parsed",
		zap.String("path", path),
		zap.Int("elements", result.ElementsRead),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (l *loader) toRecord(el element) (*domain.OverpassRecord, bool) {
	if el.Tags == nil {
		return nil, false
	}

	lat, lon := el.Lat, el.Lon
	switch el.Type {
	case domain.OSMTypeNode:
		// lat/lon лежат прямо на элементе
	case domain.OSMTypeWay, domain.OSMTypeRelation:
		if el.Center == nil {
			l.logger.Debug("Element without center, skipping",
				zap.Int64("id", el.ID),
				zap.String("type", el.Type))
			return nil, false
		}
		lat, lon = el.Center.Lat, el.Center.Lon
	default:
		return nil, false
	}

	return &domain.OverpassRecord{
		OSMId:   el.ID,
		OSMType: el.Type,
		Name:    el.Tags["name"],
		Lat:     lat,
		Lon:     lon,
		Tags:    el.Tags,
	}, true
}
