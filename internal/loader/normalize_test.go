package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omegraph/internal/domain"
	"omegraph/internal/enums"
)

func TestNormalizePlateNaming(t *testing.T) {
	tests := []struct {
		name   string
		row    domain.NamingConvention
		column domain.NamingConvention
		want   [2]domain.NamingConvention
	}{
		{"canonical", "letter", "number", [2]domain.NamingConvention{domain.NamingLetter, domain.NamingNumber}},
		{"case folded", "LETTER", "Number", [2]domain.NamingConvention{domain.NamingLetter, domain.NamingNumber}},
		{"unmatched terms become other", "roman", "Greek", [2]domain.NamingConvention{domain.NamingOther, domain.NamingOther}},
		{"empty stays empty", "", "number", [2]domain.NamingConvention{"", domain.NamingNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Plate{RowNamingConvention: tt.row, ColumnNamingConvention: tt.column}
			require.NoError(t, NewNormalizer(enums.PolicyFallback).Normalize(p))
			assert.Equal(t, tt.want, [2]domain.NamingConvention{p.RowNamingConvention, p.ColumnNamingConvention})
		})
	}

	t.Run("strict rejects unmatched terms", func(t *testing.T) {
		p := &domain.Plate{RowNamingConvention: "roman"}
		err := NewNormalizer(enums.PolicyStrict).Normalize(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row_naming_convention")
	})
}
