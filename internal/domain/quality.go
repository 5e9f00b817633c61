package domain

import (
	"net/url"
	"strings"
)

// URLVerdict - результат проверки доступности URL (кешируется на 28 дней).
type URLVerdict struct {
	URL       string `json:"url"`
	OK        bool   `json:"ok"`
	Text      string `json:"text"`
	CheckedAt string `json:"checked_at"`
}

// URLVerdicts - вердикты по URL, собранные из кеша перед проверкой качества.
// Отсутствие записи означает, что URL ещё не проверялся.
type URLVerdicts map[string]URLVerdict

// QualityReport - результат проверки качества данных одного места.
// Undefined перечисляет отсутствующие ожидаемые теги, Issues - найденные проблемы.
type QualityReport struct {
	PlaceID     int64    `json:"_id"`
	OSMType     string   `json:"_type"`
	Name        string   `json:"name"`
	DietVegan   *string  `json:"diet_vegan,omitempty"`
	Undefined   []string `json:"undefined,omitempty"`
	Issues      []string `json:"issues,omitempty"`
	IssueNumber int      `json:"issue_number"`
}

// EmailValidator проверяет синтаксис email адреса.
// Реализация живёт в pkg/validator, чтобы домен не тянул стек валидации.
type EmailValidator func(email string) error

// CheckPlace прогоняет место через правила качества данных.
// verdicts может быть nil - тогда доступность URL не оценивается,
// а только формат.
func CheckPlace(p *Place, verdicts URLVerdicts, validEmail EmailValidator) (QualityReport, error) {
	tags, err := p.TagSet()
	if err != nil {
		return QualityReport{}, err
	}

	r := QualityReport{
		PlaceID: p.OSMId,
		OSMType: p.OSMType,
	}

	name, defined := DisplayName(tags, p.OSMType, p.OSMId)
	r.Name = name
	if !defined {
		r.undefined("name")
	}

	if v, ok := tags.Get(TagDietVegan); ok {
		r.DietVegan = &v
		if v != dietValueOnly && v != dietValueYes && v != dietValueLimited && v != "no" {
			r.issue("'diet:vegan' has an unusual value: " + v)
		}
	} else {
		r.undefined(TagDietVegan)
	}

	// Для явно не веганских мест остальные проверки не имеют смысла.
	if tags.GetDefault(TagDietVegan, "") != "no" {
		r.checkCuisine(tags)
		r.checkAddress(tags)
		r.checkWebsite(tags, verdicts)
		r.checkFacebook(tags, verdicts)
		r.checkInstagram(tags, verdicts)
		r.checkEmail(tags, validEmail)
		r.checkPhone(tags)
		r.checkOpeningHours(tags)
		r.checkDisused(tags)
	}

	r.IssueNumber = len(r.Issues) + len(r.Undefined)
	return r, nil
}

func (r *QualityReport) undefined(field string) {
	r.Undefined = append(r.Undefined, field)
}

func (r *QualityReport) issue(text string) {
	r.Issues = append(r.Issues, text)
}

func (r *QualityReport) checkCuisine(tags TagSet) {
	if tags.Has("cuisine") || tags.Has("shop") {
		return
	}
	// Для кафе, баров и мороженого cuisine обычно не ставят.
	switch tags.GetDefault("amenity", "") {
	case "cafe", "ice_cream", "bar":
		return
	}
	r.undefined("cuisine")
}

func (r *QualityReport) checkAddress(tags TagSet) {
	if !tags.Has("addr:street") {
		r.undefined("addr:street")
	}
	if !tags.Has("addr:housenumber") {
		r.undefined("addr:housenumber")
	}
	if !tags.Has("addr:city") && !tags.Has("addr:suburb") {
		r.undefined("addr:city/suburb")
	}
	if !tags.Has("addr:postcode") {
		r.undefined("addr:postcode")
	}
}

func (r *QualityReport) checkWebsite(tags TagSet, verdicts URLVerdicts) {
	website := ""
	if v, ok := tags.Get("contact:website"); ok {
		website = v
		if !urlOK(v, verdicts) {
			r.issue("'contact:website' URI invalid")
		}
	}
	if v, ok := tags.Get("website"); ok {
		website = v
		if !urlOK(v, verdicts) {
			r.issue("'website' URI invalid")
		}
	}
	if strings.Contains(website, "facebook") {
		r.issue("'facebook' URI as website -> change to 'contact:facebook'")
	}
	if strings.Contains(website, "instagram") {
		r.issue("'instagram' URI as website -> change to 'contact:instagram'")
	}
	if tags.Has("contact:website") && tags.Has("website") {
		r.issue("'website' and 'contact:website' defined -> remove one")
	}
}

func (r *QualityReport) checkFacebook(tags TagSet, verdicts URLVerdicts) {
	if v, ok := tags.Get("contact:facebook"); ok {
		switch {
		case strings.HasPrefix(v, "http://"):
			r.issue("'contact:facebook' starts with 'http' instead of 'https'")
		case !strings.HasPrefix(v, "https://www.facebook.com/"):
			r.issue("'contact:facebook' does not start with 'https://www.facebook.com/'")
		case !urlOK(v, verdicts):
			r.issue("'contact:facebook' URI invalid")
		}
	}
	if tags.Has("facebook") {
		r.issue("old tag: 'facebook' -> change to 'contact:facebook'")
	}
}

func (r *QualityReport) checkInstagram(tags TagSet, verdicts URLVerdicts) {
	if v, ok := tags.Get("contact:instagram"); ok {
		switch {
		case strings.HasPrefix(v, "http://"):
			r.issue("'contact:instagram' starts with 'http' instead of 'https'")
		case !strings.HasPrefix(v, "https://www.instagram.com/"):
			r.issue("'contact:instagram' does not start with 'https://www.instagram.com/'")
		case !urlOK(v, verdicts):
			r.issue("'contact:instagram' URI invalid")
		}
	}
	if tags.Has("instagram") {
		r.issue("old tag 'instagram'")
	}
}

func (r *QualityReport) checkEmail(tags TagSet, validEmail EmailValidator) {
	email, ok := tags.Get("contact:email")
	if !ok {
		email, ok = tags.Get("email")
	}
	if ok && validEmail != nil {
		if err := validEmail(email); err != nil {
			r.issue("E-Mail is not valid: " + email)
		}
	}
	if tags.Has("contact:email") && tags.Has("email") {
		r.issue("'email' and 'contact:email' defined -> remove one")
	}
}

func (r *QualityReport) checkPhone(tags TagSet) {
	if v, ok := tags.Get("contact:phone"); ok && !strings.HasPrefix(v, "+") {
		r.issue("'contact:phone' has no international format like '+44 20 84527891'")
	}
	if v, ok := tags.Get("phone"); ok && !strings.HasPrefix(v, "+") {
		r.issue("'phone' has no international format like '+44 20 84527891'")
	}
	if tags.Has("contact:phone") && tags.Has("phone") {
		r.issue("'phone' and 'contact:phone' defined -> remove one")
	}
}

func (r *QualityReport) checkOpeningHours(tags TagSet) {
	hours := Normalize(tags).OpeningHours
	if hours == nil {
		r.undefined("opening_hours")
		return
	}
	if strings.ContainsAny(*hours, "\n\r") {
		r.issue("There is a line break in 'opening_hours' -> remove")
	}
}

func (r *QualityReport) checkDisused(tags TagSet) {
	for _, key := range tags.Keys() {
		if strings.Contains(key, "disused") {
			r.issue("There is a 'disused' tag: Check whether this tag is correct. If so, please remove the diet tags.")
			return
		}
	}
}

// urlOK - формат URL валиден и, если есть кешированный вердикт, URL доступен.
// Непроверенные URL не считаются проблемой: их проверит воркер.
func urlOK(raw string, verdicts URLVerdicts) bool {
	if !ValidURLFormat(raw) {
		return false
	}
	if v, ok := verdicts[raw]; ok {
		return v.OK
	}
	return true
}

// ValidURLFormat проверяет, что строка разбирается как URL со схемой и хостом.
func ValidURLFormat(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// CheckURLs собирает все URL места, которым нужен вердикт доступности.
func CheckURLs(tags TagSet) []string {
	var urls []string
	for _, key := range []string{"contact:website", "website", "contact:facebook", "contact:instagram"} {
		if v, ok := tags.Get(key); ok && ValidURLFormat(v) {
			urls = append(urls, v)
		}
	}
	return urls
}
