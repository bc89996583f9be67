package advisor

import (
	"context"
	"fmt"

	"github.com/phytoscan/phytoscan/internal/models"
)

// Static serves the catalog's curated guidance without any remote call.
type Static struct{}

func (s *Static) Advise(_ context.Context, rec models.DiseaseRecord, _ float64) (Advice, error) {
	summary := rec.ExpertAdvice
	if rec.Category == models.CategoryHealthy || rec.Severity == models.SeverityNone {
		if summary == "" {
			summary = "您的植物目前呈現健康狀態，建議持續維持現行管理方式。"
		}
		return Advice{
			Summary:    summary,
			Preventive: []string{"定期巡視田間，及早發現異常", "維持合理水肥管理"},
			LongTerm:   []string{"培育健壯植株，提升自身抵抗力"},
		}, nil
	}

	if summary == "" {
		summary = fmt.Sprintf("%s 屬%s，建議依下列步驟處置並持續觀察病勢發展。", rec.NameZH, rec.Severity.Label())
	}
	return Advice{
		Summary: summary,
		Immediate: []string{
			"立即隔離受感染植株，避免病害擴散",
			"移除所有受感染的葉片並妥善處理",
			"噴施銅製劑殺菌劑進行緊急處理",
			"改善通風條件，降低濕度",
		},
		Preventive: []string{
			"定期巡視田間，及早發現異常",
			"保持適當株距，改善通風透光",
			"避免葉面積水，採用滴灌方式",
			"選用抗病品種，降低感染風險",
		},
		LongTerm: []string{
			"建立完整的病蟲害記錄系統",
			"實施 3 年以上輪作計畫",
			"定期檢測土壤健康狀況",
			"培育健壯植株，提升自身抵抗力",
		},
	}, nil
}
