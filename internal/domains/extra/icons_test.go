package extra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIcon(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"known icon passes through", IconMusic, IconMusic},
		{"book icon passes through", IconBookOpen, IconBookOpen},
		{"unknown falls back to link", "Sparkles", IconLink},
		{"empty falls back to link", "", IconLink},
		{"case sensitive", "music", IconLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIcon(tt.input))
		})
	}
}

func TestIsKnownIcon(t *testing.T) {
	for _, icon := range []string{IconMusic, IconImage, IconBookOpen, IconLink, IconVideo, IconFileText} {
		assert.True(t, IsKnownIcon(icon), icon)
	}
	assert.False(t, IsKnownIcon("Gif"))
}
