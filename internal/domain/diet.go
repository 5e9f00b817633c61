package domain

// DietClassification - закрытый набор вариантов диетической классификации места.
// Значение вычисляется только через Classify, свободные значения тегов сюда не попадают.
type DietClassification string

const (
	DietVeganOnly      DietClassification = "vegan_only"
	DietVeganYes       DietClassification = "vegan_yes"
	DietVeganLimited   DietClassification = "vegan_limited"
	DietVegetarianOnly DietClassification = "vegetarian_only"
	DietVegetarianYes  DietClassification = "vegetarian_yes"
	DietNone           DietClassification = "none"
)

// OSM ключи и значения, которые участвуют в классификации.
const (
	TagDietVegan      = "diet:vegan"
	TagDietVegetarian = "diet:vegetarian"

	dietValueOnly    = "only"
	dietValueYes     = "yes"
	dietValueLimited = "limited"
)

// AllDietClassifications - допустимые значения для фильтров в API.
var AllDietClassifications = []DietClassification{
	DietVeganOnly,
	DietVeganYes,
	DietVeganLimited,
	DietVegetarianOnly,
	DietVegetarianYes,
	DietNone,
}

// Classify определяет классификацию по тегам diet:vegan / diet:vegetarian.
//
// Веганские значения всегда приоритетнее вегетарианских: даже "limited"
// веган-сигнал побеждает diet:vegetarian=only, потому что частично веганское
// место заведомо совместимо с вегетарианцами и мы схлопываем к самому
// сильному утверждению. Нераспознанные значения (например "maybe" или "no")
// трактуются как отсутствие тега, а не как ошибка.
func Classify(tags TagSet) DietClassification {
	switch tags.GetDefault(TagDietVegan, "") {
	case dietValueOnly:
		return DietVeganOnly
	case dietValueYes:
		return DietVeganYes
	case dietValueLimited:
		return DietVeganLimited
	}

	switch tags.GetDefault(TagDietVegetarian, "") {
	case dietValueOnly:
		return DietVegetarianOnly
	case dietValueYes:
		return DietVegetarianYes
	}

	return DietNone
}

// Eligible сообщает, должно ли место с такой классификацией попадать на карту.
func (c DietClassification) Eligible() bool {
	return c != DietNone && c != ""
}

// IsVegan - true для всех веганских уровней.
func (c DietClassification) IsVegan() bool {
	return c == DietVeganOnly || c == DietVeganYes || c == DietVeganLimited
}

// Valid проверяет, что значение входит в закрытый набор.
func (c DietClassification) Valid() bool {
	for _, v := range AllDietClassifications {
		if c == v {
			return true
		}
	}
	return false
}
