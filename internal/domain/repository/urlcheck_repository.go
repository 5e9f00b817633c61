package repository

import (
	"context"

	"github.com/veggieplaces-microservice/internal/domain"
)

// URLCheckRepository определяет клиент проверки доступности URL.
type URLCheckRepository interface {
	// Check проверяет формат и доступность URL, возвращает вердикт.
	// Сетевые ошибки не возвращаются как error - они часть вердикта.
	Check(ctx context.Context, url string) *domain.URLVerdict
}
