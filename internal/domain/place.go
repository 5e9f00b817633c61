package domain

import (
	"strconv"
	"strings"
	"time"
)

// OSM типы объектов.
const (
	OSMTypeNode     = "node"
	OSMTypeWay      = "way"
	OSMTypeRelation = "relation"
)

// Place представляет место из OpenStreetMap с веганской/вегетарианской маркировкой.
type Place struct {
	ID             int64              `json:"id" db:"id"`
	OSMId          int64              `json:"osm_id" db:"osm_id"`
	OSMType        string             `json:"osm_type" db:"osm_type"`
	Name           string             `json:"name" db:"name"`
	Lat            float64            `json:"lat" db:"lat"`
	Lon            float64            `json:"lon" db:"lon"`
	Classification DietClassification `json:"classification" db:"classification"`
	Tags           map[string]string  `json:"tags,omitempty" db:"tags"`
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" db:"updated_at"`
}

// TagSet возвращает теги места как TagSet.
func (p *Place) TagSet() (TagSet, error) {
	return NewTagSet(p.Tags)
}

// DisplayPayload - итоговая единица для слоя отрисовки карты.
// Создаётся заново на каждый запрос и после создания не изменяется.
type DisplayPayload struct {
	Eligible       bool                 `json:"eligible"`
	Classification DietClassification   `json:"classification"`
	Attributes     NormalizedAttributes `json:"attributes"`
}

// Evaluate - чистая функция: один TagSet на входе, один DisplayPayload на
// выходе. Атрибуты вычисляются даже для eligible=false, чтобы слой отрисовки
// сам решал, что делать с неподходящими местами.
func Evaluate(tags TagSet) DisplayPayload {
	classification := Classify(tags)
	return DisplayPayload{
		Eligible:       classification.Eligible(),
		Classification: classification,
		Attributes:     Normalize(tags),
	}
}

// DisplayName строит имя места по правилам исходных данных:
// name -> name:en -> "vending machine" для автоматов -> "<type> <id>".
// Двойные кавычки заменяются, чтобы имя нельзя было использовать для экранирования.
func DisplayName(tags TagSet, osmType string, osmID int64) (name string, defined bool) {
	defined = true
	if v, ok := tags.Get("name"); ok {
		name = v
	} else if v, ok := tags.Get("name:en"); ok {
		name = v
	} else if tags.GetDefault("amenity", "") == "vending_machine" {
		name = "vending machine"
	} else {
		name = osmType + " " + formatInt(osmID)
		defined = false
	}
	return sanitizeName(name), defined
}

func sanitizeName(name string) string {
	return strings.ReplaceAll(name, `"`, "”")
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
