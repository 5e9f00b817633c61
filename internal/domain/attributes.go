package domain

// Address - структурированный адрес из addr:* тегов.
type Address struct {
	Street      *string `json:"street,omitempty"`
	Housenumber *string `json:"housenumber,omitempty"`
	City        *string `json:"city,omitempty"`
	Suburb      *string `json:"suburb,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
}

// Empty - true, если ни одно поле адреса не заполнено.
func (a Address) Empty() bool {
	return a.Street == nil && a.Housenumber == nil && a.City == nil &&
		a.Suburb == nil && a.Postcode == nil
}

// NormalizedAttributes - вторичные атрибуты места для отображения.
// nil означает отсутствие тега; значения копируются дословно, без
// переформатирования: opening_hours парсит внешняя грамматика,
// телефон/email/URL валидирует слой отображения.
type NormalizedAttributes struct {
	Cuisine      *string  `json:"cuisine,omitempty"`
	Address      *Address `json:"address,omitempty"`
	OpeningHours *string  `json:"opening_hours,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Website      *string  `json:"website,omitempty"`
	Facebook     *string  `json:"facebook,omitempty"`
	Instagram    *string  `json:"instagram,omitempty"`
}

// Normalize извлекает атрибуты отображения из сырых тегов.
// Для контактов предпочитается contact:* ключ, старый ключ без namespace
// используется как fallback (в данных OSM встречаются оба варианта).
func Normalize(tags TagSet) NormalizedAttributes {
	attrs := NormalizedAttributes{
		Cuisine:      lookup(tags, "cuisine"),
		OpeningHours: openingHours(tags),
		Phone:        lookupWithFallback(tags, "contact:phone", "phone"),
		Email:        lookupWithFallback(tags, "contact:email", "email"),
		Website:      lookupWithFallback(tags, "contact:website", "website"),
		Facebook:     lookup(tags, "contact:facebook"),
		Instagram:    lookup(tags, "contact:instagram"),
	}

	addr := Address{
		Street:      lookup(tags, "addr:street"),
		Housenumber: lookup(tags, "addr:housenumber"),
		City:        lookup(tags, "addr:city"),
		Suburb:      lookup(tags, "addr:suburb"),
		Postcode:    lookup(tags, "addr:postcode"),
	}
	if !addr.Empty() {
		attrs.Address = &addr
	}

	return attrs
}

// openingHours предпочитает opening_hours:covid19, если там задано
// собственное расписание, а не маркеры "same"/"restricted".
func openingHours(tags TagSet) *string {
	if v, ok := tags.Get("opening_hours:covid19"); ok && v != "same" && v != "restricted" {
		return &v
	}
	return lookup(tags, "opening_hours")
}

func lookup(tags TagSet, key string) *string {
	if v, ok := tags.Get(key); ok {
		return &v
	}
	return nil
}

func lookupWithFallback(tags TagSet, key, fallback string) *string {
	if v := lookup(tags, key); v != nil {
		return v
	}
	return lookup(tags, fallback)
}
