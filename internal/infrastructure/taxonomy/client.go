package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/restoration-tracker/internal/config"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewTaxonomyClient creates the client for the external species lookup
// service.
func NewTaxonomyClient(cfg *config.TaxonomyConfig, logger *zap.Logger) repository.TaxonomyRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type speciesResponse struct {
	SearchResponse []domain.TaxonomyCode `json:"searchResponse"`
}

// ResolveSpecies resolves species identifiers to display labels.
// An empty id list short-circuits without a network call.
func (c *client) ResolveSpecies(ctx context.Context, ids []int64) ([]domain.TaxonomyCode, error) {
	if len(ids) == 0 {
		return []domain.TaxonomyCode{}, nil
	}

	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, strconv.FormatInt(id, 10))
	}

	url := fmt.Sprintf("%s/api/taxonomy/species/list?ids=%s", c.baseURL, strings.Join(idStrs, ","))

	c.logger.Debug("Calling taxonomy service",
		zap.String("url", url),
		zap.Int("ids_count", len(ids)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Taxonomy service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("taxonomy service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var speciesResp speciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&speciesResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return speciesResp.SearchResponse, nil
}
