package classnames

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected string
	}{
		{
			name:     "single underscore separator",
			class:    "Tomato_Early_blight",
			expected: "Tomato___Early_blight",
		},
		{
			name:     "double underscore separator",
			class:    "Tomato__Early_blight",
			expected: "Tomato___Early_blight",
		},
		{
			name:     "already canonical",
			class:    "Tomato___Early_blight",
			expected: "Tomato___Early_blight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.class)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestCatalogID(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected string
	}{
		{
			name:     "mapped class",
			class:    "Tomato___Early_blight",
			expected: "tomato_early_blight",
		},
		{
			name:     "mapped after normalization",
			class:    "Tomato_Early_blight",
			expected: "tomato_early_blight",
		},
		{
			name:     "healthy pseudo-class",
			class:    "Healthy",
			expected: "healthy",
		},
		{
			name:     "per-crop healthy class",
			class:    "Apple___healthy",
			expected: "healthy",
		},
		{
			name:     "unmapped class gets a slug",
			class:    "Banana___Leaf_spot",
			expected: "banana_leaf_spot",
		},
		{
			name:     "empty class is non-navigable",
			class:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CatalogID(tt.class)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected string
	}{
		{
			name:     "mapped class",
			class:    "Tomato___Early_blight",
			expected: "番茄早疫病",
		},
		{
			name:     "pepper variant without comma",
			class:    "Pepper_bell__Bacterial_spot",
			expected: "甜椒細菌性斑點病",
		},
		{
			name:     "unmapped class reads as words",
			class:    "Banana___Leaf_spot",
			expected: "Banana Leaf spot",
		},
		{
			name:     "empty class",
			class:    "",
			expected: "未知",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayName(tt.class)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}
