package utils

import (
	"errors"
	"testing"

	"eventaggregator/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Comment string  `json:"comment"   validate:"required,max=10"`
	Link    *string `json:"artistUrl" validate:"omitempty,url"`
}

func TestValidateStruct(t *testing.T) {
	badURL := "not a url"
	goodURL := "https://example.com/a"

	tests := []struct {
		name      string
		input     sampleRequest
		wantField string
		wantMsg   string
	}{
		{name: "valid", input: sampleRequest{Comment: "great", Link: &goodURL}},
		{name: "missing comment", input: sampleRequest{}, wantField: "comment", wantMsg: "is required"},
		{name: "comment too long", input: sampleRequest{Comment: "far too long for this"}, wantField: "comment", wantMsg: "must not exceed 10 characters"},
		{name: "bad url", input: sampleRequest{Comment: "ok", Link: &badURL}, wantField: "artistUrl", wantMsg: "must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrValidation))

			var validationErr *types.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.wantMsg, validationErr.Message)
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello", CleanText("  hello \n"))
	assert.Equal(t, "nul", CleanText("n\x00ul"))
	assert.Equal(t, "ok", CleanText("o\xffk"))
}
