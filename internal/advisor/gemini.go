package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/phytoscan/phytoscan/internal/models"
)

// Gemini generates advice with Google Gemini. Requires GEMINI_API_KEY;
// the model defaults to gemini-1.5-flash and can be overridden with
// GEMINI_MODEL.
type Gemini struct{}

func (g *Gemini) Advise(ctx context.Context, rec models.DiseaseRecord, confidence float64) (Advice, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return Advice{}, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return Advice{}, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	modelName := os.Getenv("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(rec, confidence)))
	if err != nil {
		return Advice{}, fmt.Errorf("failed to generate advice: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return Advice{}, fmt.Errorf("no candidates returned from gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return Advice{}, fmt.Errorf("empty content returned from gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return Advice{}, fmt.Errorf("unexpected response format from gemini")
	}
	return Advice{Summary: strings.TrimSpace(string(txt))}, nil
}

func buildPrompt(rec models.DiseaseRecord, confidence float64) string {
	var b strings.Builder
	b.WriteString("你是一位資深植物病理專家。一張葉片照片被判定為「")
	b.WriteString(rec.NameZH)
	if rec.Pathogen != "" && rec.Pathogen != "無" {
		fmt.Fprintf(&b, "」（病原：%s", rec.Pathogen)
		b.WriteString("）")
	} else {
		b.WriteString("」")
	}
	fmt.Fprintf(&b, "，置信度 %.1f%%。\n", confidence*100)
	if len(rec.Symptoms) > 0 {
		b.WriteString("已知症狀：")
		b.WriteString(strings.Join(rec.Symptoms, "；"))
		b.WriteString("。\n")
	}
	b.WriteString("請以 150 字以內提供務實的田間管理建議，聚焦於當季可以立即執行的措施。只回覆建議內容本身。")
	return b.String()
}
