// Package catalog normalizes raw disease records from the knowledge-base
// service into their canonical in-memory form and answers filter/search
// queries over the normalized set.
package catalog

import (
	"fmt"
	"strings"

	"github.com/phytoscan/phytoscan/internal/classnames"
	"github.com/phytoscan/phytoscan/internal/models"
)

// RawImage mirrors one image reference as the service ships it.
type RawImage struct {
	URL     string `json:"url" parquet:"url"`
	Caption string `json:"caption" parquet:"caption"`
	Source  string `json:"source" parquet:"source"`
}

// RawRecord mirrors a knowledge-base record before normalization. The id
// may live under several historical field names depending on which scraper
// produced the record.
type RawRecord struct {
	ID            string     `json:"id" parquet:"id"`
	AltID         string     `json:"_id" parquet:"alt_id"`
	DiseaseID     string     `json:"disease_id" parquet:"disease_id"`
	KaggleClass   string     `json:"kaggle_class" parquet:"kaggle_class"`
	NameZH        string     `json:"name_zh" parquet:"name_zh"`
	NameEN        string     `json:"name_en" parquet:"name_en"`
	Pathogen      string     `json:"pathogen" parquet:"pathogen"`
	Category      string     `json:"category" parquet:"category"`
	Severity      string     `json:"severity" parquet:"severity"`
	SeverityLevel int        `json:"severity_level" parquet:"severity_level"`
	HostPlants    []string   `json:"host_plants" parquet:"host_plants,list"`
	Distribution  string     `json:"distribution" parquet:"distribution"`
	Symptoms      []string   `json:"symptoms" parquet:"symptoms,list"`
	Causes        []string   `json:"causes" parquet:"causes,list"`
	Prevention    []string   `json:"prevention" parquet:"prevention,list"`
	Treatment     []string   `json:"treatment" parquet:"treatment,list"`
	ExpertAdvice  string     `json:"expert_advice" parquet:"expert_advice"`
	Images        []RawImage `json:"images" parquet:"images,list"`
}

// ResolveID picks the record's stable identifier, in priority order:
// explicit id, alternate _id, domain disease_id, then the classifier class
// name mapped to its catalog id. An empty result means the record cannot
// be a lookup key and must stay non-navigable.
func ResolveID(raw RawRecord) string {
	for _, candidate := range []string{raw.ID, raw.AltID, raw.DiseaseID} {
		if candidate != "" {
			return candidate
		}
	}
	return classnames.CatalogID(raw.KaggleClass)
}

// SafeImageURL percent-encodes every non-ASCII character of an asset URL,
// character by character, leaving ASCII untouched. Scraped asset URLs
// routinely carry raw CJK file names that break transport otherwise.
func SafeImageURL(raw string) string {
	ascii := true
	for i := 0; i < len(raw); i++ {
		if raw[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) * 3)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < 0x80 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// Normalize converts one raw record into its canonical form. It is pure
// and called once per record at catalog-load time.
func Normalize(raw RawRecord) models.DiseaseRecord {
	severity := models.ParseSeverity(raw.Severity)
	level := severity.Level()
	if level < 0 {
		level = raw.SeverityLevel
	}

	images := make([]models.DiseaseImage, 0, len(raw.Images))
	for _, img := range raw.Images {
		images = append(images, models.DiseaseImage{
			URL:     SafeImageURL(img.URL),
			Caption: img.Caption,
			Source:  img.Source,
		})
	}

	return models.DiseaseRecord{
		ID:            ResolveID(raw),
		NameZH:        raw.NameZH,
		NameEN:        raw.NameEN,
		Pathogen:      raw.Pathogen,
		Category:      models.ParseCategory(raw.Category),
		Severity:      severity,
		SeverityLevel: level,
		HostPlants:    raw.HostPlants,
		Distribution:  raw.Distribution,
		Symptoms:      raw.Symptoms,
		Causes:        raw.Causes,
		Prevention:    raw.Prevention,
		Treatment:     raw.Treatment,
		ExpertAdvice:  raw.ExpertAdvice,
		Images:        images,
	}
}

// NormalizeAll normalizes a batch, preserving order.
func NormalizeAll(raws []RawRecord) []models.DiseaseRecord {
	records := make([]models.DiseaseRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw))
	}
	return records
}
