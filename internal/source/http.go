package source

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/table"
)

// loadHTTP fetches src and parses it as JSON when the content type or URL path says so,
// as CSV otherwise.
func (l *Loader) loadHTTP(ctx context.Context, src string) (table.Table, error) {
	resp, err := l.doRequest(ctx, src)
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to fetch %s: %w", src, err)
	}

	parse := parseCSV
	if isJSON(resp.Header().Get("Content-Type"), src) {
		parse = parseJSON
	}
	t, err := parse(resp.Body())
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to parse %s: %w", src, err)
	}
	return t, nil
}

func isJSON(contentType, src string) bool {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return true
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return strings.EqualFold(path.Ext(u.Path), ".json")
}

// doRequest performs a GET with retry on network errors, 429 and 5xx responses.
// Waits honour Retry-After and otherwise back off exponentially.
func (l *Loader) doRequest(ctx context.Context, src string) (*resty.Response, error) {
	var (
		resp *resty.Response
		err  error
	)
	attempts := l.cfg.HTTPRetries
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		l.logger.Debug("Executing request", zap.String("url", src), zap.Int("attempt", i+1))
		resp, err = l.client.R().SetContext(ctx).Get(src)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		var retryAfter time.Duration

		if err != nil {
			shouldRetry = true
		} else {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
			err = fmt.Errorf("request failed with status %s", resp.Status())
		}

		if !shouldRetry {
			return nil, err
		}
		if i == attempts-1 {
			break
		}

		if retryAfter == 0 {
			retryAfter = time.Duration(math.Pow(2, float64(i))) * l.backoff
		}

		l.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", attempts, err)
}
