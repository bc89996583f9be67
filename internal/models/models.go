package models

// Category classifies the causal agent of a disease.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryFungal    Category = "fungal"
	CategoryBacterial Category = "bacterial"
	CategoryOomycete  Category = "oomycete"
	CategoryHealthy   Category = "healthy"
	CategoryOther     Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryAll:       "全部",
	CategoryFungal:    "真菌性病害",
	CategoryBacterial: "細菌性病害",
	CategoryOomycete:  "卵菌性病害",
	CategoryHealthy:   "健康",
	CategoryOther:     "其他",
}

// Label returns the display label used by the knowledge-base service.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory accepts both canonical tokens and the service's display
// labels. Empty input means "all"; anything unrecognized is "other".
func ParseCategory(s string) Category {
	switch s {
	case "", "all", "全部":
		return CategoryAll
	case "fungal", "真菌性病害":
		return CategoryFungal
	case "bacterial", "細菌性病害":
		return CategoryBacterial
	case "oomycete", "卵菌性病害":
		return CategoryOomycete
	case "healthy", "健康":
		return CategoryHealthy
	}
	return CategoryOther
}

// Severity is the ordered risk classification of a disease.
type Severity string

const (
	SeverityAll            Severity = "all"
	SeveritySevere         Severity = "severe"
	SeverityModerateSevere Severity = "moderate-severe"
	SeverityModerate       Severity = "moderate"
	SeverityLow            Severity = "low"
	SeverityNone           Severity = "none"
)

var severityLevels = map[Severity]int{
	SeveritySevere:         4,
	SeverityModerateSevere: 3,
	SeverityModerate:       2,
	SeverityLow:            1,
	SeverityNone:           0,
}

var severityLabels = map[Severity]string{
	SeverityAll:            "全部",
	SeveritySevere:         "嚴重",
	SeverityModerateSevere: "中度至嚴重",
	SeverityModerate:       "中度",
	SeverityLow:            "低",
	SeverityNone:           "無",
}

// Level returns the numeric risk level, severe=4 down to none=0.
// Unknown severities rank below none.
func (s Severity) Level() int {
	if level, ok := severityLevels[s]; ok {
		return level
	}
	return -1
}

// Label returns the display label used by the knowledge-base service.
func (s Severity) Label() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseSeverity accepts both canonical tokens and the service's display
// labels. Empty input means "all".
func ParseSeverity(s string) Severity {
	switch s {
	case "", "all", "全部":
		return SeverityAll
	case "severe", "嚴重":
		return SeveritySevere
	case "moderate-severe", "中度至嚴重":
		return SeverityModerateSevere
	case "moderate", "中度":
		return SeverityModerate
	case "low", "低":
		return SeverityLow
	case "none", "無":
		return SeverityNone
	}
	return Severity(s)
}

// DiseaseImage is one reference photo attached to a disease record.
type DiseaseImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Source  string `json:"source,omitempty"`
}

// DiseaseRecord is one normalized catalog entry: a disease or the
// "healthy" pseudo-disease. Records are immutable after normalization.
type DiseaseRecord struct {
	ID            string         `json:"id"`
	NameZH        string         `json:"name_zh"`
	NameEN        string         `json:"name_en"`
	Pathogen      string         `json:"pathogen,omitempty"`
	Category      Category       `json:"category"`
	Severity      Severity       `json:"severity"`
	SeverityLevel int            `json:"severity_level"`
	HostPlants    []string       `json:"host_plants,omitempty"`
	Distribution  string         `json:"distribution,omitempty"`
	Symptoms      []string       `json:"symptoms,omitempty"`
	Causes        []string       `json:"causes,omitempty"`
	Prevention    []string       `json:"prevention,omitempty"`
	Treatment     []string       `json:"treatment,omitempty"`
	ExpertAdvice  string         `json:"expert_advice,omitempty"`
	Images        []DiseaseImage `json:"images,omitempty"`
}

// Navigable reports whether the record has a stable identifier and can be
// used as a lookup key for detail views.
func (d DiseaseRecord) Navigable() bool {
	return d.ID != ""
}

// Mode records how a diagnostic result was produced.
type Mode string

const (
	// ModeLive means the remote classifier answered.
	ModeLive Mode = "live"
	// ModeDemoFallback means the remote call failed and the result was
	// synthesized locally. The UI must disclose this.
	ModeDemoFallback Mode = "demo-fallback"
)

// Prediction is one ranked classifier output.
type Prediction struct {
	Class       string   `json:"kaggle_class"`
	DiseaseID   string   `json:"disease_id"`
	DiseaseName string   `json:"disease_name"`
	Confidence  float64  `json:"confidence"`
	Severity    Severity `json:"severity"`
}

// DistributionPoint is one chart-ready slice of the probability
// distribution. Values are percentages and sum to ~100 across a result.
type DistributionPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DiagnosticResult is the outcome of one completed diagnostic session.
type DiagnosticResult struct {
	Mode         Mode                `json:"mode"`
	ElapsedSec   float64             `json:"elapsed_sec"`
	Primary      Prediction          `json:"primary"`
	Top3         []Prediction        `json:"top3"`
	Distribution []DistributionPoint `json:"distribution"`
	Detail       *DiseaseRecord      `json:"disease_detail,omitempty"`
}

// Stats are the aggregate service counters, display only.
type Stats struct {
	TotalDiseases        int            `json:"total_diseases"`
	TotalIdentifications int            `json:"total_identifications"`
	Accuracy             string         `json:"accuracy"`
	ModelVersion         string         `json:"model_version,omitempty"`
	Dataset              string         `json:"dataset,omitempty"`
	Categories           map[string]int `json:"categories,omitempty"`
}
