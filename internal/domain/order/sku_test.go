//go:build unit

package order_test

import (
	"testing"

	"orderflow/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestValidateSKUs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       []string
		wantValid   bool
		wantInvalid []string
	}{
		{
			name:      "empty input is valid",
			input:     nil,
			wantValid: true,
		},
		{
			name:      "whitespace-only entries are dropped",
			input:     []string{"  ", "\t"},
			wantValid: true,
		},
		{
			name:      "accepts uppercase with digits hyphen underscore",
			input:     []string{"ABC-123", "SKU_01", "XYZ"},
			wantValid: true,
		},
		{
			name:        "rejects lowercase",
			input:       []string{"abc"},
			wantValid:   false,
			wantInvalid: []string{"abc"},
		},
		{
			name:        "rejects too short and too long",
			input:       []string{"AB", "A234567890123456789012345678901234"},
			wantValid:   false,
			wantInvalid: []string{"AB", "A234567890123456789012345678901234"},
		},
		{
			name:      "duplicates do not cause rejection",
			input:     []string{"ABC123", "ABC123", " ABC123 "},
			wantValid: true,
		},
		{
			name:        "invalid duplicate reported once",
			input:       []string{"bad", "bad", "GOOD-1"},
			wantValid:   false,
			wantInvalid: []string{"bad"},
		},
		{
			name:        "rejects embedded whitespace and symbols",
			input:       []string{"ABC 123", "ABC#123"},
			wantValid:   false,
			wantInvalid: []string{"ABC 123", "ABC#123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := order.ValidateSKUs(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantInvalid, got.InvalidSKUs)
		})
	}
}
