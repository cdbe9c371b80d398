package extra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateExtraRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateExtraRequest
		wantErr error
	}{
		{"valid", CreateExtraRequest{Title: "Series Playlist", URL: "https://open.spotify.com/playlist/x"}, nil},
		{"missing title", CreateExtraRequest{URL: "https://open.spotify.com/playlist/x"}, ErrInvalidTitle},
		{"missing url", CreateExtraRequest{Title: "Series Playlist"}, ErrInvalidURL},
		// A bad URL must not be reported as a title problem.
		{"malformed url", CreateExtraRequest{Title: "Series Playlist", URL: "not a url"}, ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateExtraRequest_ToEntityDefaults(t *testing.T) {
	req := CreateExtraRequest{Title: "Series Playlist", URL: "https://open.spotify.com/playlist/x"}

	e := req.ToEntity()

	assert.True(t, e.Active)
	assert.Equal(t, DefaultIcon, e.Icon)
}

func TestUpdateExtraRequest_ApplyToEntityPartial(t *testing.T) {
	e := &Extra{
		Title:  "Series Playlist",
		URL:    "https://open.spotify.com/playlist/x",
		Active: true,
	}

	inactive := false
	req := UpdateExtraRequest{Active: &inactive}
	req.ApplyToEntity(e)

	assert.False(t, e.Active)
	assert.Equal(t, "Series Playlist", e.Title)
	assert.Equal(t, "https://open.spotify.com/playlist/x", e.URL)
}
