package catalog

import "github.com/phytoscan/phytoscan/internal/models"

// Fallback returns the built-in catalog used when the knowledge-base
// service is unreachable. Small on purpose: just enough to keep the
// catalog views and the demo diagnostic flow working offline.
func Fallback() []models.DiseaseRecord {
	return []models.DiseaseRecord{
		{
			ID: "tomato_early_blight", NameZH: "番茄早疫病", NameEN: "Tomato Early Blight",
			Pathogen: "Alternaria solani", Category: models.CategoryFungal,
			Severity: models.SeverityModerate, SeverityLevel: 2,
			HostPlants: []string{"番茄", "馬鈴薯"},
		},
		{
			ID: "tomato_late_blight", NameZH: "番茄晚疫病", NameEN: "Tomato Late Blight",
			Pathogen: "Phytophthora infestans", Category: models.CategoryOomycete,
			Severity: models.SeveritySevere, SeverityLevel: 4,
			HostPlants: []string{"番茄", "馬鈴薯"},
		},
		{
			ID: "corn_gray_leaf_spot", NameZH: "玉米灰葉斑病", NameEN: "Corn Gray Leaf Spot",
			Pathogen: "Cercospora zeae-maydis", Category: models.CategoryFungal,
			Severity: models.SeverityModerateSevere, SeverityLevel: 3,
			HostPlants: []string{"玉米"},
		},
		{
			ID: "apple_scab", NameZH: "蘋果黑星病", NameEN: "Apple Scab",
			Pathogen: "Venturia inaequalis", Category: models.CategoryFungal,
			Severity: models.SeveritySevere, SeverityLevel: 4,
			HostPlants: []string{"蘋果", "梨"},
		},
		{
			ID: "grape_black_rot", NameZH: "葡萄黑腐病", NameEN: "Grape Black Rot",
			Pathogen: "Guignardia bidwellii", Category: models.CategoryFungal,
			Severity: models.SeveritySevere, SeverityLevel: 4,
			HostPlants: []string{"葡萄"},
		},
		{
			ID: "healthy", NameZH: "健康植物", NameEN: "Healthy Plant",
			Pathogen: "無", Category: models.CategoryHealthy,
			Severity: models.SeverityNone, SeverityLevel: 0,
			HostPlants: []string{"所有作物"},
		},
	}
}

var fallbackDetails = map[string]models.DiseaseRecord{
	"tomato_early_blight": {
		ID: "tomato_early_blight", NameZH: "番茄早疫病", NameEN: "Tomato Early Blight",
		Pathogen: "Alternaria solani", Category: models.CategoryFungal,
		Severity: models.SeverityModerate, SeverityLevel: 2,
		HostPlants:   []string{"番茄", "馬鈴薯", "茄子"},
		Distribution: "全球性，溫暖潮濕地區最普遍",
		Symptoms: []string{
			"葉片出現同心圓狀褐色病斑（靶心狀）",
			"病斑周圍有黃色暈圈",
			"由植株下方老葉開始發病",
			"嚴重時葉片變黃乾枯脫落",
		},
		Causes: []string{
			"病菌以菌絲或分生孢子在土壤中的病殘體越冬",
			"氣溫 24–29°C 配合高濕度（>90% RH）最易發病",
		},
		Prevention: []string{
			"選用抗病品種",
			"實施 3 年以上輪作，避免連作茄科",
			"保持適當株距（60 cm 以上），改善通風",
			"採滴灌方式，避免葉面積水",
		},
		Treatment: []string{
			"代森錳鋅（Mancozeb）75% WP 500 倍液，每 7 天噴一次",
			"亞托敏（Azoxystrobin）25% SC 1000 倍液",
			"每 7–10 天噴施一次，連續 3–4 次",
		},
		ExpertAdvice: "早疫病在連作地區及梅雨季節發生率極高，建議採取「預防優先」策略：在花期前即開始保護性噴藥，並搭配有機硅助劑提升展著性。",
	},
	"healthy": {
		ID: "healthy", NameZH: "健康植物", NameEN: "Healthy Plant",
		Pathogen: "無", Category: models.CategoryHealthy,
		Severity: models.SeverityNone, SeverityLevel: 0,
		HostPlants:   []string{"所有作物"},
		Distribution: "—",
		Symptoms:     []string{"葉色鮮綠均勻", "葉形正常無扭曲", "無病斑或異常"},
		Causes:       []string{"良好農業管理"},
		Prevention:   []string{"定期巡視田間", "維持合理水肥管理"},
		Treatment:    []string{"目前無需治療"},
		ExpertAdvice: "您的植物目前呈現健康狀態！建議持續維持現行良好的農業管理實踐。",
	},
}

// FallbackDetail returns the built-in full record for an id, for the
// detail view when the service cannot answer. Ids without a built-in
// detail report false and the caller navigates back to the catalog list.
func FallbackDetail(id string) (models.DiseaseRecord, bool) {
	rec, ok := fallbackDetails[id]
	return rec, ok
}
