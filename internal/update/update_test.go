package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain semver", "1.2.3", "1.2.3"},
		{"v prefix", "v1.2.3", "1.2.3"},
		{"tag prefix", "attcm/v1.2.3", "1.2.3"},
		{"dev", "dev", "dev"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeVersion(tt.in))
		})
	}
}

func TestVersionDisplay(t *testing.T) {
	assert.Equal(t, "2.0.0", VersionDisplay("attcm/v2.0.0"))
	assert.Equal(t, "2.0.0", VersionDisplay("v2.0.0"))
}
