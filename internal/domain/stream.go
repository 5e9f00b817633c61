package domain

import "github.com/google/uuid"

// Stream names (должны совпадать у API и воркера)
const (
	StreamURLCheckRequest = "stream:urlcheck:request"
)

// URLCheckEvent - запрос на проверку доступности URL.
type URLCheckEvent struct {
	EventID uuid.UUID `json:"event_id"`
	URL     string    `json:"url"`
}

// NewURLCheckEvent создаёт событие с новым идентификатором.
func NewURLCheckEvent(url string) URLCheckEvent {
	return URLCheckEvent{
		EventID: uuid.New(),
		URL:     url,
	}
}

// StreamMessage - сообщение из Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
