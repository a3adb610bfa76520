package loader

import (
	"fmt"
	"strings"

	"omegraph/internal/domain"
	"omegraph/internal/enums"
)

// Normalizer rewrites free-text vocabulary fields to canonical values
type Normalizer struct {
	policy enums.Policy
}

// NewNormalizer creates a normalizer that resolves under policy
func NewNormalizer(policy enums.Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Normalize resolves every non-empty vocabulary field of e in place
func (n *Normalizer) Normalize(e domain.Entity) error {
	switch v := e.(type) {
	case *domain.Channel:
		return first(
			resolve(n.policy, "contrast_method", domain.ContrastMethods, domain.ContrastOther, &v.ContrastMethod),
			resolve(n.policy, "illumination_type", domain.IlluminationTypes, domain.IlluminationOther, &v.IlluminationType),
			resolve(n.policy, "acquisition_mode", domain.AcquisitionModes, domain.AcquisitionOther, &v.AcquisitionMode),
		)
	case *domain.Objective:
		return first(
			resolve(n.policy, "correction", domain.Corrections, domain.CorrectionOther, &v.Correction),
			resolve(n.policy, "immersion", domain.Immersions, domain.ImmersionOther, &v.Immersion),
		)
	case *domain.Detector:
		return resolve(n.policy, "type", domain.DetectorTypes, domain.DetectorOther, &v.Type)
	case *domain.Filter:
		return resolve(n.policy, "type", domain.FilterTypes, domain.FilterOther, &v.Type)
	case *domain.Laser:
		return first(
			resolve(n.policy, "type", domain.LaserTypes, domain.LaserOther, &v.Type),
			resolve(n.policy, "laser_medium", domain.LaserMedia, domain.MediumOther, &v.LaserMedium),
		)
	case *domain.Arc:
		return resolve(n.policy, "type", domain.ArcTypes, domain.ArcOther, &v.Type)
	case *domain.Filament:
		return resolve(n.policy, "type", domain.FilamentTypes, domain.FilamentOther, &v.Type)
	case *domain.Plate:
		lowerNaming(&v.RowNamingConvention)
		lowerNaming(&v.ColumnNamingConvention)
		return first(
			resolve(n.policy, "row_naming_convention", domain.NamingConventions, domain.NamingOther, &v.RowNamingConvention),
			resolve(n.policy, "column_naming_convention", domain.NamingConventions, domain.NamingOther, &v.ColumnNamingConvention),
		)
	}
	return nil
}

func resolve[V ~string](policy enums.Policy, field string, set map[string]V, unknown V, value *V) error {
	if *value == "" {
		return nil
	}
	v, err := enums.NewResolver(policy, unknown).Resolve(set, string(*value))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*value = v
	return nil
}

func lowerNaming(v *domain.NamingConvention) {
	*v = domain.NamingConvention(strings.ToLower(string(*v)))
}

func first(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
