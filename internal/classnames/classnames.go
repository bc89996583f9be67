// Package classnames maps PlantVillage classifier class names to stable
// catalog identifiers and localized display names. The dataset ships class
// names with inconsistent underscore separators (single, double, triple),
// so lookups normalize to the triple-underscore form first.
package classnames

import (
	"regexp"
	"strings"
)

type entry struct {
	id     string
	nameZH string
}

var table = map[string]entry{
	"Apple___Apple_scab":        {"apple_scab", "蘋果黑星病"},
	"Apple___Black_rot":         {"apple_black_rot", "蘋果黑腐病"},
	"Apple___Cedar_apple_rust":  {"apple_cedar_rust", "蘋果銹病"},
	"Apple___healthy":           {"healthy", "蘋果（健康）"},
	"Blueberry___healthy":       {"healthy", "藍莓（健康）"},
	"Cherry_(including_sour)___Powdery_mildew": {"cherry_powdery_mildew", "櫻桃白粉病"},
	"Cherry_(including_sour)___healthy":        {"healthy", "櫻桃（健康）"},
	"Corn_(maize)___Cercospora_leaf_spot Gray_leaf_spot": {"corn_cercospora", "玉米灰葉斑病"},
	"Corn_(maize)___Common_rust_":                        {"corn_common_rust", "玉米普通銹病"},
	"Corn_(maize)___Northern_Leaf_Blight":                {"corn_northern_blight", "玉米北方葉枯病"},
	"Corn_(maize)___healthy":                             {"healthy", "玉米（健康）"},
	"Grape___Black_rot":                            {"grape_black_rot", "葡萄黑腐病"},
	"Grape___Esca_(Black_Measles)":                 {"grape_esca", "葡萄黑麻疹病"},
	"Grape___Leaf_blight_(Isariopsis_Leaf_Spot)":   {"grape_leaf_blight", "葡萄葉枯病"},
	"Grape___healthy":                              {"healthy", "葡萄（健康）"},
	"Orange___Haunglongbing_(Citrus_greening)":     {"orange_haunglongbing", "柑橘黃龍病"},
	"Peach___Bacterial_spot":                       {"peach_bacterial_spot", "桃細菌性穿孔病"},
	"Peach___healthy":                              {"healthy", "桃（健康）"},
	"Pepper,_bell___Bacterial_spot":                {"pepper_bacterial_spot", "甜椒細菌性斑點病"},
	"Pepper,_bell___healthy":                       {"healthy", "甜椒（健康）"},
	"Pepper_bell___Bacterial_spot":                 {"pepper_bacterial_spot", "甜椒細菌性斑點病"},
	"Pepper_bell___healthy":                        {"healthy", "甜椒（健康）"},
	"Potato___Early_blight":                        {"potato_early_blight", "馬鈴薯早疫病"},
	"Potato___Late_blight":                         {"potato_late_blight", "馬鈴薯晚疫病"},
	"Potato___healthy":                             {"healthy", "馬鈴薯（健康）"},
	"Raspberry___healthy":                          {"healthy", "覆盆子（健康）"},
	"Soybean___healthy":                            {"healthy", "大豆（健康）"},
	"Squash___Powdery_mildew":                      {"squash_powdery_mildew", "南瓜白粉病"},
	"Strawberry___Leaf_scorch":                     {"strawberry_leaf_scorch", "草莓葉焦病"},
	"Strawberry___healthy":                         {"healthy", "草莓（健康）"},
	"Tomato___Bacterial_spot":                      {"tomato_bacterial_spot", "番茄細菌性斑點病"},
	"Tomato___Early_blight":                        {"tomato_early_blight", "番茄早疫病"},
	"Tomato___Late_blight":                         {"tomato_late_blight", "番茄晚疫病"},
	"Tomato___Leaf_Mold":                           {"tomato_leaf_mold", "番茄葉黴病"},
	"Tomato___Septoria_leaf_spot":                  {"tomato_septoria", "番茄斑點病"},
	"Tomato___Spider_mites Two-spotted_spider_mite": {"tomato_spider_mites", "番茄二斑葉蟎"},
	"Tomato___Target_Spot":                          {"tomato_target_spot", "番茄靶斑病"},
	"Tomato___Tomato_Yellow_Leaf_Curl_Virus":        {"tomato_yellow_leaf_curl", "番茄黃化捲葉病毒病"},
	"Tomato___Tomato_mosaic_virus":                  {"tomato_mosaic_virus", "番茄嵌紋病毒病"},
	"Tomato___healthy":                              {"healthy", "番茄（健康）"},
	"Healthy":                                       {"healthy", "健康植物"},
}

var (
	underscoreRuns = regexp.MustCompile(`_+`)
	cropSeparator  = regexp.MustCompile(`_([A-Z])`)
	slugStrip      = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize rewrites a classifier class name to the canonical
// triple-underscore form, e.g. Tomato_Early_blight → Tomato___Early_blight.
func Normalize(class string) string {
	class = underscoreRuns.ReplaceAllString(class, "_")
	return cropSeparator.ReplaceAllString(class, "___${1}")
}

func lookup(class string) (entry, bool) {
	if e, ok := table[class]; ok {
		return e, true
	}
	e, ok := table[Normalize(class)]
	return e, ok
}

// CatalogID resolves a classifier class name to its catalog identifier.
// Unmapped classes get a slug derived from the class name; an empty class
// resolves to an empty, non-navigable id.
func CatalogID(class string) string {
	if class == "" {
		return ""
	}
	if e, ok := lookup(class); ok {
		return e.id
	}
	slug := slugStrip.ReplaceAllString(strings.ToLower(class), "_")
	return strings.Trim(slug, "_")
}

// DisplayName resolves a classifier class name to its localized display
// name. Unmapped classes fall back to the class name with underscore runs
// replaced by spaces; an empty class is reported as unknown.
func DisplayName(class string) string {
	if class == "" {
		return "未知"
	}
	if e, ok := lookup(class); ok {
		return e.nameZH
	}
	name := strings.ReplaceAll(class, "___", " ")
	return strings.ReplaceAll(name, "_", " ")
}
