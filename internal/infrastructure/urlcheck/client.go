package urlcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиент проверки доступности URL.
func NewClient(timeout time.Duration, logger *zap.Logger) repository.URLCheckRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Check проверяет URL. Правила статусов повторяют поведение карты:
// всё ниже 400 - ok; 403 и 429 считаются условно доступными, потому что
// многие сайты (особенно instagram) отдают их только ботам, оставаясь
// доступными из браузера.
func (c *client) Check(ctx context.Context, url string) *domain.URLVerdict {
	verdict := &domain.URLVerdict{
		URL:       url,
		CheckedAt: time.Now().Format("2006-01-02"),
	}

	if !domain.ValidURLFormat(url) {
		verdict.OK = false
		verdict.Text = "No valid URL format"
		return verdict
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		verdict.OK = false
		verdict.Text = fmt.Sprintf("Exception: %v", err)
		return verdict
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("URL unreachable", zap.String("url", url), zap.Error(err))
		verdict.OK = false
		verdict.Text = fmt.Sprintf("Exception: %v", err)
		return verdict
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode < http.StatusBadRequest:
		verdict.OK = true
		verdict.Text = "OK"
	case resp.StatusCode == http.StatusForbidden:
		verdict.OK = true
		verdict.Text = "Can't do full check: HTTP response: Forbidden"
	case resp.StatusCode == http.StatusTooManyRequests:
		verdict.OK = true
		verdict.Text = "Can't do full check: HTTP response: Too Many Requests"
	default:
		c.logger.Debug("URL returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		verdict.OK = false
		verdict.Text = fmt.Sprintf("HTTP response code %d", resp.StatusCode)
	}

	return verdict
}
