package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phytoscan/phytoscan/internal/models"
)

func TestNewClientBaseURL(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		env  string
		want string
	}{
		{"explicit", "http://example.com/api", "", "http://example.com/api"},
		{"trailing slash trimmed", "http://example.com/api///", "", "http://example.com/api"},
		{"env fallback", "", "http://env-host:9000/api", "http://env-host:9000/api"},
		{"default", "", "", DefaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHYTOSCAN_API_URL", tt.env)
			if got := NewClient(tt.arg).BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiseasesDecodesBothShapes(t *testing.T) {
	bare := `[{"id": "apple_scab", "name_zh": "蘋果黑星病", "category": "真菌性病害", "severity": "嚴重"}]`
	wrapped := `{"diseases": [{"_id": "apple_scab", "name_zh": "蘋果黑星病", "category": "fungal", "severity": "severe"}]}`

	for _, tt := range []struct {
		name string
		body string
	}{
		{"bare list", bare},
		{"wrapped list", wrapped},
	} {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/diseases" {
					t.Errorf("path = %q, want /api/diseases", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Error(err)
				}
			}))
			defer server.Close()

			records, err := NewClient(server.URL + "/api").Diseases(context.Background())
			if err != nil {
				t.Fatalf("Diseases() error: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].ID != "apple_scab" {
				t.Errorf("id = %q, want apple_scab", records[0].ID)
			}
			if records[0].Category != models.CategoryFungal {
				t.Errorf("category = %q, want fungal", records[0].Category)
			}
			if records[0].SeverityLevel != 4 {
				t.Errorf("severity level = %d, want 4", records[0].SeverityLevel)
			}
		})
	}
}

func TestDiseaseEscapesID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id": "a b", "name_zh": "x"}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	if _, err := NewClient(server.URL + "/api").Disease(context.Background(), "a b"); err != nil {
		t.Fatalf("Disease() error: %v", err)
	}
	if gotPath != "/api/diseases/a%20b" {
		t.Errorf("path = %q, want /api/diseases/a%%20b", gotPath)
	}
}

func TestStatsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL + "/api").Stats(context.Background())
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention the status code", err)
	}
}

func TestPredictMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/predict" {
			t.Errorf("path = %q, want /api/predict", r.URL.Path)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("missing image form file: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "leaf.jpg" {
			t.Errorf("filename = %q, want leaf.jpg", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		resp := `{
			"success": true,
			"elapsed_sec": 2.4,
			"primary": {"kaggle_class": "Tomato_Early_blight", "confidence": 0.91, "severity": "中度"},
			"top3": [
				{"kaggle_class": "Tomato_Early_blight", "confidence": 0.91, "severity": "中度"},
				{"kaggle_class": "Tomato_Late_blight", "confidence": 0.06, "severity": "嚴重"}
			]
		}`
		if _, err := w.Write([]byte(resp)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	result, err := client.Predict(context.Background(), "leaf.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}

	if result.Mode != models.ModeLive {
		t.Errorf("mode = %q, want live", result.Mode)
	}
	if result.ElapsedSec != 2.4 {
		t.Errorf("elapsed = %v, want 2.4", result.ElapsedSec)
	}
	if result.Primary.DiseaseID != "tomato_early_blight" {
		t.Errorf("primary id = %q, want tomato_early_blight (backfilled from class)", result.Primary.DiseaseID)
	}
	if result.Primary.DiseaseName != "番茄早疫病" {
		t.Errorf("primary name = %q, want 番茄早疫病", result.Primary.DiseaseName)
	}
	if result.Primary.Severity != models.SeverityModerate {
		t.Errorf("primary severity = %q, want moderate", result.Primary.Severity)
	}
	if len(result.Top3) != 2 {
		t.Errorf("got %d top3 entries, want 2", len(result.Top3))
	}
}

func TestPredictBase64(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["image_data"] != "aGVsbG8=" {
			t.Errorf("image_data = %q, want data-URL prefix stripped", body["image_data"])
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"success": true, "primary": {"kaggle_class": "Potato___healthy", "confidence": 0.99}}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	result, err := NewClient(server.URL+"/api").PredictBase64(context.Background(), "data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("PredictBase64() error: %v", err)
	}
	if result.Primary.DiseaseID != "healthy" {
		t.Errorf("primary id = %q, want healthy", result.Primary.DiseaseID)
	}
}

func TestPredictErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL+"/api").Predict(context.Background(), "leaf.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error on 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error %q does not mention the status code", err)
	}
}
