package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cityride/nearby_discovery/internal/models"
)

// HTTPSource - клиент внешнего провайдера обнаружения событий.
// Таймауты и повторные попытки остаются на стороне провайдера; клиент
// ограничивается таймаутом http.Client.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search запрашивает у провайдера события по фильтрам.
func (s *HTTPSource) Search(ctx context.Context, filters models.NearbyFilters) ([]models.CatalogEvent, error) {
	endpoint, err := url.Parse(s.baseURL + "/events/search")
	if err != nil {
		return nil, fmt.Errorf("discovery: invalid base URL: %w", err)
	}

	q := endpoint.Query()
	q.Set("category", filters.Category)
	q.Set("radius", strconv.FormatFloat(filters.Distance, 'f', -1, 64))
	q.Set("start_date", filters.StartDate)
	q.Set("end_date", filters.EndDate)
	if filters.SearchQuery != "" {
		q.Set("q", filters.SearchQuery)
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("discovery: failed to create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("discovery: search returned status %d", resp.StatusCode)
	}

	var events []models.CatalogEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("discovery: failed to decode search response: %w", err)
	}
	return events, nil
}
