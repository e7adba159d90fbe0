package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_SegmentValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		setID   string
		cardID  string
		wantErr bool
	}{
		{"plain ids", "base2", "base2-1", false},
		{"underscore", "sv_151", "card_01", false},
		{"missing card", "base2", "", true},
		{"path traversal", "..", "card", true},
		{"slash", "base2/../x", "card", true},
		{"dot", "base2", "card.png", true},
		{"space", "base 2", "card", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(cardQuery{SetID: tt.setID, CardID: tt.cardID})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(cardQuery{SetID: "../etc"})
	require.Error(t, err)

	fields := FormatValidationError(err)

	assert.Equal(t, "This field is required", fields["cardid"])
	assert.Contains(t, fields["setid"], "letters, digits")
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
