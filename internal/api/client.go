// Package api is the client for the remote plant-disease service: the
// disease knowledge base, aggregate stats, and the image classifier.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/classnames"
	"github.com/phytoscan/phytoscan/internal/models"
)

// DefaultBaseURL is the local-development origin used when no base URL is
// configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Client talks to the remote service. The 30s timeout on the underlying
// http.Client bounds every call, including predictions; the session
// controller treats a timeout like any other failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a service client. An empty baseURL falls back to the
// PHYTOSCAN_API_URL environment variable, then to the local default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PHYTOSCAN_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	for len(baseURL) > 1 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL reports the configured service origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Health checks the service health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.get(ctx, "/health")
	return err
}

// Diseases fetches and normalizes the disease catalog. The service may
// return a bare list or wrap it under a "diseases" field.
func (c *Client) Diseases(ctx context.Context) ([]models.DiseaseRecord, error) {
	body, err := c.get(ctx, "/diseases")
	if err != nil {
		return nil, err
	}

	var raws []catalog.RawRecord
	if err := json.Unmarshal(body, &raws); err == nil {
		return catalog.NormalizeAll(raws), nil
	}

	var wrapped struct {
		Diseases []catalog.RawRecord `json:"diseases"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode disease list: %w", err)
	}
	return catalog.NormalizeAll(wrapped.Diseases), nil
}

// Disease fetches one disease record by its catalog id.
func (c *Client) Disease(ctx context.Context, id string) (models.DiseaseRecord, error) {
	body, err := c.get(ctx, "/diseases/"+url.PathEscape(id))
	if err != nil {
		return models.DiseaseRecord{}, err
	}

	var raw catalog.RawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.DiseaseRecord{}, fmt.Errorf("failed to decode disease record: %w", err)
	}
	return catalog.Normalize(raw), nil
}

// Stats fetches the aggregate service counters.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	body, err := c.get(ctx, "/stats")
	if err != nil {
		return models.Stats{}, err
	}

	var stats models.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return models.Stats{}, fmt.Errorf("failed to decode stats: %w", err)
	}
	return stats, nil
}

// PlaceholderStats are the fixed display values substituted when the
// stats endpoint is unreachable.
func PlaceholderStats() models.Stats {
	return models.Stats{
		TotalDiseases:        10,
		TotalIdentifications: 1389,
		Accuracy:             "94.3%",
		Dataset:              "54,305 張",
	}
}

type wirePrediction struct {
	KaggleClass string  `json:"kaggle_class"`
	DiseaseID   string  `json:"disease_id"`
	DiseaseName string  `json:"disease_name"`
	Confidence  float64 `json:"confidence"`
	Severity    string  `json:"severity"`
}

func (p wirePrediction) toModel() models.Prediction {
	id := p.DiseaseID
	if id == "" {
		id = classnames.CatalogID(p.KaggleClass)
	}
	name := p.DiseaseName
	if name == "" {
		name = classnames.DisplayName(p.KaggleClass)
	}
	return models.Prediction{
		Class:       p.KaggleClass,
		DiseaseID:   id,
		DiseaseName: name,
		Confidence:  p.Confidence,
		Severity:    models.ParseSeverity(p.Severity),
	}
}

type predictResponse struct {
	Success      bool                       `json:"success"`
	ElapsedSec   float64                    `json:"elapsed_sec"`
	Primary      wirePrediction             `json:"primary"`
	Top3         []wirePrediction           `json:"top3"`
	Distribution []models.DistributionPoint `json:"distribution"`
	Detail       *catalog.RawRecord         `json:"disease_detail"`
}

func (r predictResponse) toModel() models.DiagnosticResult {
	result := models.DiagnosticResult{
		Mode:         models.ModeLive,
		ElapsedSec:   r.ElapsedSec,
		Primary:      r.Primary.toModel(),
		Distribution: r.Distribution,
	}
	for _, p := range r.Top3 {
		result.Top3 = append(result.Top3, p.toModel())
	}
	if r.Detail != nil {
		detail := catalog.Normalize(*r.Detail)
		result.Detail = &detail
	}
	return result
}

// Predict submits an image to the classifier as a multipart upload.
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (models.DiagnosticResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to buffer image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	return c.predict(ctx, writer.FormDataContentType(), &buf)
}

// PredictBase64 submits a base64-encoded image as a JSON body. A data-URL
// prefix is accepted and stripped before sending.
func (c *Client) PredictBase64(ctx context.Context, imageData string) (models.DiagnosticResult, error) {
	if i := strings.Index(imageData, ","); i >= 0 && strings.HasPrefix(imageData, "data:") {
		imageData = imageData[i+1:]
	}
	body, err := json.Marshal(map[string]string{"image_data": imageData})
	if err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.predict(ctx, "application/json", bytes.NewReader(body))
}

func (c *Client) predict(ctx context.Context, contentType string, body io.Reader) (models.DiagnosticResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", body)
	if err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return models.DiagnosticResult{}, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return decoded.toModel(), nil
}
