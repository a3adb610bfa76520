package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omegraph/internal/domain"
)

func TestResolvePlanApo(t *testing.T) {
	set := map[string]string{"PlanApo": "X"}
	for _, q := range []string{"PlanApo", "PlApo", "  PlApo", "PlApo   ", "PlanApochromat"} {
		t.Run(q, func(t *testing.T) {
			v, err := Strict[string]{}.Resolve(set, q)
			require.NoError(t, err)
			assert.Equal(t, "X", v)
		})
	}
}

func TestMatchCanonicalSets(t *testing.T) {
	tests := []struct {
		query string
		want  domain.Correction
	}{
		{"PlanApochromat", domain.CorrectionPlanApo},
		{"Plan Fluor", domain.CorrectionFluor},
		{"Holographic", domain.CorrectionOther},
		{"PlanFluor 40x", domain.CorrectionPlanFluor},
		{"Apo", domain.CorrectionApo},
		{"Neofl", domain.CorrectionNeofluar},
		{"UV", domain.CorrectionUV},
	}
	r := NewResolver(PolicyFallback, domain.CorrectionOther)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			v, err := r.Resolve(domain.Corrections, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestPolicies(t *testing.T) {
	t.Run("strict fails with ErrNoMatch", func(t *testing.T) {
		r := NewResolver(PolicyStrict, domain.ImmersionOther)
		_, err := r.Resolve(domain.Immersions, "Honey")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("fallback returns the unknown value", func(t *testing.T) {
		r := NewResolver(PolicyFallback, domain.ImmersionOther)
		v, err := r.Resolve(domain.Immersions, "Honey")
		require.NoError(t, err)
		assert.Equal(t, domain.ImmersionOther, v)
	})

	t.Run("empty query never matches", func(t *testing.T) {
		_, err := Strict[domain.Immersion]{}.Resolve(domain.Immersions, "   ")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, ok := Match(map[string]int{"Oil": 1}, "oil")
		assert.False(t, ok)
	})

	t.Run("parse policy", func(t *testing.T) {
		p, err := ParsePolicy(" Strict ")
		require.NoError(t, err)
		assert.Equal(t, PolicyStrict, p)
		p, err = ParsePolicy("")
		require.NoError(t, err)
		assert.Equal(t, PolicyFallback, p)
		_, err = ParsePolicy("lenient")
		assert.Error(t, err)
	})
}
