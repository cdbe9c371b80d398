package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBookRequest
		wantErr error
	}{
		{"valid minimal", CreateBookRequest{Title: "Shadow Blooded"}, nil},
		{"valid with status", CreateBookRequest{Title: "Shadow Blooded", Status: StatusUpcoming}, nil},
		{"missing title", CreateBookRequest{}, ErrInvalidTitle},
		{"title too long", CreateBookRequest{Title: strings.Repeat("x", MaxTitleLength+1)}, ErrTitleTooLong},
		// A status failure must surface as a status error, not a title one.
		{"bad status", CreateBookRequest{Title: "Shadow Blooded", Status: "out-of-print"}, ErrInvalidStatus},
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

func TestCreateBookRequest_ToEntityDefaults(t *testing.T) {
	req := CreateBookRequest{Title: "Shadow Blooded"}

	b := req.ToEntity("Heeloly Upasani")

	assert.Equal(t, "Heeloly Upasani", b.Author)
	assert.Equal(t, DefaultSeries, b.Series)
	assert.Equal(t, StatusAvailable, b.Status)
	assert.NotNil(t, b.Genres)
	assert.NotNil(t, b.BuyLinks)
}

func TestCreateBookRequest_ToEntityKeepsExplicitValues(t *testing.T) {
	num := 2
	req := CreateBookRequest{
		Title:      "Shadow Crowned",
		Author:     "Guest Author",
		Series:     "Shadow Chronicles",
		BookNumber: &num,
		Status:     StatusNewRelease,
		Genres:     []string{"Fantasy", "Romance"},
		BuyLinks:   []BuyLink{{Name: "Amazon", URL: "https://example.com/b"}},
	}

	b := req.ToEntity("Heeloly Upasani")

	assert.Equal(t, "Guest Author", b.Author)
	assert.Equal(t, "Shadow Chronicles", b.Series)
	require.NotNil(t, b.BookNumber)
	assert.Equal(t, 2, *b.BookNumber)
	assert.Equal(t, StatusNewRelease, b.Status)
	assert.Equal(t, []string{"Fantasy", "Romance"}, b.Genres)
}

func TestUpdateBookRequest_Validate(t *testing.T) {
	empty := ""
	long := strings.Repeat("x", MaxTitleLength+1)
	bad := "retired"
	upcoming := StatusUpcoming

	assert.NoError(t, UpdateBookRequest{}.Validate())
	assert.NoError(t, UpdateBookRequest{Status: &upcoming}.Validate())
	assert.ErrorIs(t, UpdateBookRequest{Title: &empty}.Validate(), ErrInvalidTitle)
	assert.ErrorIs(t, UpdateBookRequest{Title: &long}.Validate(), ErrTitleTooLong)
	assert.ErrorIs(t, UpdateBookRequest{Status: &bad}.Validate(), ErrInvalidStatus)
}

func TestUpdateBookRequest_ApplyToEntityPartial(t *testing.T) {
	b := &Book{
		Title:  "Shadow Blooded",
		Author: "Heeloly Upasani",
		Status: StatusAvailable,
	}

	upcoming := StatusUpcoming
	req := UpdateBookRequest{Status: &upcoming}
	req.ApplyToEntity(b)

	assert.Equal(t, StatusUpcoming, b.Status)
	assert.True(t, b.IsUpcoming())
	// Untouched fields survive a partial update.
	assert.Equal(t, "Shadow Blooded", b.Title)
	assert.Equal(t, "Heeloly Upasani", b.Author)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusAvailable))
	assert.True(t, IsValidStatus(StatusNewRelease))
	assert.True(t, IsValidStatus(StatusUpcoming))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("sold-out"))
}
