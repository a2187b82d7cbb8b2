package dogapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/ports"
	"github.com/Gunvolt24/dogbreeds/pkg/metrics"
)

const (
	DefaultBaseURL = "https://dog.ceo/api"
	DefaultTimeout = 5 * time.Second

	maxBodyBytes = 1 << 20
)

// Проверка, что BreedFetcher удовлетворяет интерфейсу BreedProvider.
var _ ports.BreedProvider = (*BreedFetcher)(nil)

// BreedFetcher — источник подпород на dog.ceo API.
// Любая неудача (нет породы, сеть, статус, формат ответа) — domain.ErrBreedNotFound.
type BreedFetcher struct {
	baseURL string
	client  *http.Client
}

// NewBreedFetcher — конструктор. Пустой baseURL — DefaultBaseURL, timeout <= 0 — DefaultTimeout.
// client == nil — собственный клиент с otelhttp-транспортом.
func NewBreedFetcher(baseURL string, timeout time.Duration, client *http.Client) *BreedFetcher {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &BreedFetcher{baseURL: baseURL, client: client}
}

// SubBreeds — GET {base}/breed/{name}/list, name = trim + lower.
func (f *BreedFetcher) SubBreeds(ctx context.Context, breed domain.Breed) ([]string, error) {
	key := breed.Key()
	if key.Absent() || key.Name() == "" {
		return nil, notFound(breed, "empty breed name")
	}

	start := time.Now()
	subBreeds, err := f.fetch(ctx, key.Name())
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("not_found").Inc()
		return nil, notFound(breed, err.Error())
	}
	metrics.ProviderRequests.WithLabelValues("ok").Inc()
	return subBreeds, nil
}

func (f *BreedFetcher) fetch(ctx context.Context, name string) ([]string, error) {
	endpoint := f.baseURL + "/breed/" + url.PathEscape(name) + "/list"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return parseSubBreeds(body)
}

// parseSubBreeds — разбор конверта {"status":"success","message":[...]}.
func parseSubBreeds(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("response is not an object")
	}

	if status := doc.Get("status"); !strings.EqualFold(status.String(), "success") {
		return nil, fmt.Errorf("status %q", status.String())
	}

	message := doc.Get("message")
	if !message.IsArray() {
		return nil, fmt.Errorf("message is not an array")
	}

	items := message.Array()
	subBreeds := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("message[%d] is not a string", i)
		}
		subBreeds = append(subBreeds, item.Str)
	}
	return subBreeds, nil
}

func notFound(breed domain.Breed, reason string) error {
	return fmt.Errorf("%w: %s (%s)", domain.ErrBreedNotFound, breed, reason)
}
