package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phytoscan/phytoscan/internal/advisor"
	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/models"
	"github.com/phytoscan/phytoscan/internal/session"
	"github.com/phytoscan/phytoscan/internal/storage"
)

// newTestHandler points the API client at an unroutable address so every
// remote call exercises the fallback paths.
func newTestHandler() *Handler {
	client := api.NewClient("http://127.0.0.1:1/api")
	return New(client, catalog.StaticSource{}, &advisor.Static{})
}

func TestHandleDiseases(t *testing.T) {
	router := newTestHandler().Router()

	tests := []struct {
		name  string
		url   string
		total int
	}{
		{"all", "/api/diseases", len(catalog.Fallback())},
		{"search term", "/api/diseases?search=番茄", 2},
		{"category filter", "/api/diseases?category=oomycete", 1},
		{"severity filter", "/api/diseases?severity=severe", 3},
		{"conjunction", "/api/diseases?search=番茄&severity=severe", 1},
		{"no match", "/api/diseases?search=nothing-here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var body struct {
				Diseases []models.DiseaseRecord `json:"diseases"`
				Total    int                    `json:"total"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Total != tt.total {
				t.Errorf("total = %d, want %d", body.Total, tt.total)
			}
			if len(body.Diseases) != tt.total {
				t.Errorf("len(diseases) = %d, want %d", len(body.Diseases), tt.total)
			}
		})
	}
}

func TestHandleDiseaseDetail(t *testing.T) {
	router := newTestHandler().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/diseases/tomato_early_blight", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var record models.DiseaseRecord
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if record.ID != "tomato_early_blight" {
		t.Errorf("id = %q, want tomato_early_blight", record.ID)
	}
	if len(record.Symptoms) == 0 {
		t.Error("expected fallback detail to carry symptoms")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/diseases/no_such_disease", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestHandleStatsPlaceholder(t *testing.T) {
	router := newTestHandler().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats models.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := api.PlaceholderStats()
	if stats.TotalDiseases != want.TotalDiseases || stats.Accuracy != want.Accuracy {
		t.Errorf("stats = %+v, want placeholder %+v", stats, want)
	}
}

func TestHandleIdentifyFallsBackToDemo(t *testing.T) {
	router := newTestHandler().Router()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "leaf.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("not really a png")); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/api/identify", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var stored storage.StoredResult
	if err := json.NewDecoder(rec.Body).Decode(&stored); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stored.ID == "" {
		t.Error("expected a stored result id")
	}
	if stored.Result.Mode != models.ModeDemoFallback {
		t.Errorf("mode = %q, want %q", stored.Result.Mode, models.ModeDemoFallback)
	}
	if stored.Result.Primary.DiseaseID != "tomato_early_blight" {
		t.Errorf("primary id = %q, want tomato_early_blight", stored.Result.Primary.DiseaseID)
	}
}

func TestHandleIdentifyRejectsUnsupportedType(t *testing.T) {
	router := newTestHandler().Router()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("%PDF-1.4")); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/api/identify", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestResultsLifecycle(t *testing.T) {
	handler := newTestHandler()
	router := handler.Router()

	stored := handler.store.Add("leaf.jpg", "", session.DemoResult())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/results/"+stored.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/results/"+stored.ID+"/advice", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("advice status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var advice advisor.Advice
	if err := json.NewDecoder(rec.Body).Decode(&advice); err != nil {
		t.Fatalf("decode advice: %v", err)
	}
	if advice.Summary == "" {
		t.Error("expected non-empty advice summary")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/results/"+stored.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/results/"+stored.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}
