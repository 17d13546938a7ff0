package federation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// ErrNoBatch is returned when the gateway has no batch for the requested date or tag.
var ErrNoBatch = errors.New("no federation batch available")

const (
	batchTagHeader     = "batchTag"
	nextBatchTagHeader = "nextBatchTag"
	maxErrorBodyBytes  = 512
)

type wireKey struct {
	KeyData                    []byte   `json:"keyData"`
	RollingStartIntervalNumber uint32   `json:"rollingStartIntervalNumber"`
	RollingPeriod              uint32   `json:"rollingPeriod"`
	TransmissionRiskLevel      int32    `json:"transmissionRiskLevel"`
	ReportType                 string   `json:"reportType"`
	Origin                     string   `json:"origin"`
	VisitedCountries           []string `json:"visitedCountries"`
	DaysSinceOnsetOfSymptoms   *int32   `json:"daysSinceOnsetOfSymptoms,omitempty"`
}

type wireBatch struct {
	Keys []wireKey `json:"keys"`
}

// HTTPGateway downloads batches as JSON documents. It is an adapter for
// environments without the partner's native protocol.
type HTTPGateway struct {
	client  *http.Client
	baseURL string
	limiter ratelimit.Limiter
}

// NewHTTPGateway constructs an HTTPGateway issuing at most rps downloads per second.
func NewHTTPGateway(baseURL string, rps int, timeout time.Duration) (*HTTPGateway, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &HTTPGateway{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: limiter,
	}, nil
}

// DownloadBatch fetches GET <base>/diagnosiskeys/download/<date>; the batch tag
// travels in the batchTag request and response headers.
func (g *HTTPGateway) DownloadBatch(ctx context.Context, date time.Time, tag string) (model.FederationBatch, error) {
	g.limiter.Take()
	if err := ctx.Err(); err != nil {
		return model.FederationBatch{}, err
	}

	endpoint := fmt.Sprintf("%s/diagnosiskeys/download/%s", g.baseURL, model.Day(date).Format(time.DateOnly))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.FederationBatch{}, fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if tag != "" {
		req.Header.Set(batchTagHeader, tag)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return model.FederationBatch{}, fmt.Errorf("download batch: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return model.FederationBatch{}, ErrNoBatch
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return model.FederationBatch{}, fmt.Errorf("download batch: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload wireBatch
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.FederationBatch{}, fmt.Errorf("decode batch: %w", err)
	}

	batch := model.FederationBatch{
		Tag:     resp.Header.Get(batchTagHeader),
		NextTag: resp.Header.Get(nextBatchTagHeader),
		Keys:    make([]model.DiagnosisKey, 0, len(payload.Keys)),
	}
	if batch.Tag == "" {
		batch.Tag = tag
	}
	if batch.Tag == "" {
		return model.FederationBatch{}, errors.New("download batch: response carries no batch tag")
	}
	for _, k := range payload.Keys {
		batch.Keys = append(batch.Keys, model.DiagnosisKey{
			KeyData:                    k.KeyData,
			RollingStartIntervalNumber: k.RollingStartIntervalNumber,
			RollingPeriod:              k.RollingPeriod,
			TransmissionRiskLevel:      k.TransmissionRiskLevel,
			ReportType:                 model.ReportType(k.ReportType),
			OriginCountry:              k.Origin,
			VisitedCountries:           k.VisitedCountries,
			DaysSinceOnsetOfSymptoms:   k.DaysSinceOnsetOfSymptoms,
		})
	}
	return batch, nil
}
