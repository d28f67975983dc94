package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

func TestContainsString(t *testing.T) {
	tests := []struct {
		name  string
		slice []string
		str   string
		want  bool
	}{
		{"present", []string{"files", "files_sharing"}, "files", true},
		{"absent", []string{"files", "files_sharing"}, "gallery", false},
		{"empty slice", []string{}, "files", false},
		{"nil slice", nil, "files", false},
		{"case sensitive", []string{"Files"}, "files", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ContainsString(tt.slice, tt.str))
		})
	}
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"trims and dedupes", []string{" admin", "staff ", "admin"}, []string{"admin", "staff"}},
		{"drops empty entries", []string{"", "  ", "staff"}, []string{"staff"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeList(tt.values))
		})
	}
}

func TestIntersects(t *testing.T) {
	assert.True(t, utils.Intersects([]string{"admin", "staff"}, []string{"staff"}))
	assert.False(t, utils.Intersects([]string{"admin"}, []string{"staff"}))
	assert.False(t, utils.Intersects(nil, []string{"staff"}))
}
