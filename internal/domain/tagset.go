package domain

import "errors"

// ErrInvalidTagSet возвращается, когда источник данных передал nil вместо карты тегов.
// Это нарушение контракта со стороны слоя загрузки данных, а не проблема качества OSM.
var ErrInvalidTagSet = errors.New("tag set must not be nil")

// TagSet - неизменяемое представление сырых OSM тегов одного объекта.
// Ключи имеют namespace через двоеточие (diet:vegan, contact:phone, addr:street).
type TagSet struct {
	tags map[string]string
}

// NewTagSet оборачивает карту тегов. Карта принадлежит вызывающему и не копируется,
// поэтому после передачи её нельзя модифицировать.
func NewTagSet(tags map[string]string) (TagSet, error) {
	if tags == nil {
		return TagSet{}, ErrInvalidTagSet
	}
	return TagSet{tags: tags}, nil
}

// Get возвращает значение тега. Отсутствующий ключ - не ошибка: второе
// значение false. Пустая строка в значении отличается от отсутствия ключа.
func (t TagSet) Get(key string) (string, bool) {
	v, ok := t.tags[key]
	return v, ok
}

// GetDefault возвращает значение тега или значение по умолчанию.
func (t TagSet) GetDefault(key, def string) string {
	if v, ok := t.tags[key]; ok {
		return v
	}
	return def
}

// Has проверяет наличие ключа.
func (t TagSet) Has(key string) bool {
	_, ok := t.tags[key]
	return ok
}

// Len возвращает количество тегов.
func (t TagSet) Len() int {
	return len(t.tags)
}

// Keys возвращает все ключи тегов (порядок не определён).
func (t TagSet) Keys() []string {
	keys := make([]string, 0, len(t.tags))
	for k := range t.tags {
		keys = append(keys, k)
	}
	return keys
}

// Raw возвращает исходную карту тегов для сериализации в хранилище.
func (t TagSet) Raw() map[string]string {
	return t.tags
}
