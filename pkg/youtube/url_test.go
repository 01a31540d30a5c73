package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "short link with tracking param",
			input: "https://youtu.be/dQw4w9WgXcQ?si=abc123",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "standard watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL with extra params",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&feature=share",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "shorts URL",
			input: "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "embed URL",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "live URL",
			input: "https://www.youtube.com/live/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "mobile host",
			input: "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "missing scheme",
			input: "youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare video ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-YouTube host",
			input:   "https://vimeo.com/123456789",
			wantErr: true,
		},
		{
			name:    "watch URL without v param",
			input:   "https://www.youtube.com/watch?list=PL123",
			wantErr: true,
		},
		{
			name:    "malformed ID",
			input:   "https://youtu.be/short",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize(t *testing.T) {
	canonical, id, err := Canonicalize("https://youtu.be/dQw4w9WgXcQ?si=abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", canonical)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	// Canonical input round-trips unchanged
	same, _, err := Canonicalize(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, same)
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		EmbedURL("dQw4w9WgXcQ", 0, 0))
	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?start=30",
		EmbedURL("dQw4w9WgXcQ", 30, 0))
	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?end=45&start=30",
		EmbedURL("dQw4w9WgXcQ", 30, 45))
}
