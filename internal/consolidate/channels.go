package consolidate

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"omegraph/internal/domain"
	"omegraph/internal/store"
)

// DisplaySource names where a channel's display color came from
type DisplaySource string

const (
	SourceEmissionWavelength   DisplaySource = "emission_wavelength"
	SourceLightPathEmission    DisplaySource = "light_path_emission_filter"
	SourceFilterSetEmission    DisplaySource = "filter_set_emission_filter"
	SourceLightPathExcitation  DisplaySource = "light_path_excitation_filter"
	SourceFilterSetExcitation  DisplaySource = "filter_set_excitation_filter"
	SourceExcitationWavelength DisplaySource = "excitation_wavelength"
	SourceLightSource          DisplaySource = "light_source"
	SourceDefault              DisplaySource = "default"
	SourceNeutral              DisplaySource = "neutral"
)

// ChannelDisplay is the derived color and label of one channel
type ChannelDisplay struct {
	Channel domain.EntityID `json:"channel"`
	Source  DisplaySource   `json:"source"`
	Value   *float64        `json:"value,omitempty"`
	Color   domain.Color    `json:"color"`
	Label   string          `json:"label"`
}

// DeriveChannelDisplay computes a display color and label for every channel
// from the first usable source, in order: recorded emission wavelength,
// light path emission filter, filter set emission filter, light path
// excitation filter, filter set excitation filter, recorded excitation
// wavelength, light source wavelength, and finally a positional or neutral
// default.
type DeriveChannelDisplay struct{}

func (DeriveChannelDisplay) Name() string { return "derive_channel_display" }

func (DeriveChannelDisplay) Run(ctx context.Context, st *State) error {
	for _, c := range st.Containers.All(domain.TypeChannel) {
		if err := ctx.Err(); err != nil {
			return err
		}
		ch := c.Entity.(*domain.Channel)
		d := deriveChannel(st, c, ch)

		if ch.Color == nil || st.Policy.OverrideColors {
			color := d.Color
			ch.Color = &color
		}
		if ch.Name == "" {
			ch.Name = d.Label
		}
		st.Report.Channels = append(st.Report.Channels, d)
		st.Logger.Debug("Derived channel display",
			zap.String("channel", c.ID.Canonical()),
			zap.String("source", string(d.Source)),
			zap.String("label", d.Label))
	}
	return nil
}

// candidate yields a wavelength, or false when the source is absent
type candidate struct {
	source DisplaySource
	value  func() (float64, bool)
}

func deriveChannel(st *State, c *store.Container, ch *domain.Channel) ChannelDisplay {
	lightPath := domain.Structural(domain.TypeLightPath, c.Coords()...)
	filterSets := st.roleReferences(c.ID, store.RoleFilterSet)

	candidates := []candidate{
		{SourceEmissionWavelength, optional(ch.EmissionWavelength)},
		{SourceLightPathEmission, st.filterValue([]domain.EntityID{lightPath}, store.RoleEmissionFilter)},
		{SourceFilterSetEmission, st.filterValue(filterSets, store.RoleEmissionFilter)},
		{SourceLightPathExcitation, st.filterValue([]domain.EntityID{lightPath}, store.RoleExcitationFilter)},
		{SourceFilterSetExcitation, st.filterValue(filterSets, store.RoleExcitationFilter)},
		{SourceExcitationWavelength, optional(ch.ExcitationWavelength)},
		{SourceLightSource, st.lightSourceValue(c.ID)},
	}

	for _, cand := range candidates {
		v, ok := cand.value()
		if !ok {
			continue
		}
		band, ok := st.Policy.Band(v)
		if !ok {
			continue
		}
		value := v
		return ChannelDisplay{
			Channel: c.ID,
			Source:  cand.source,
			Value:   &value,
			Color:   band.Color,
			Label:   formatWavelength(v),
		}
	}

	position, _ := c.Coord(domain.ChannelIndex)
	d := ChannelDisplay{
		Channel: c.ID,
		Source:  SourceDefault,
		Color:   st.Policy.defaultColor(ch, position),
		Label:   strconv.Itoa(position),
	}
	if st.Policy.NonFluorescent != nil && st.Policy.NonFluorescent(ch) {
		d.Source = SourceNeutral
	}
	return d
}

func optional(v *float64) func() (float64, bool) {
	return func() (float64, bool) {
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

// sourceKeys returns every key references from id may have been recorded
// under: the canonical id of the container id resolves to, plus its external
// id when it has one. An unknown id is returned as is.
func (st *State) sourceKeys(id domain.EntityID) []domain.EntityID {
	c, ok := st.Containers.Get(id)
	if !ok {
		return []domain.EntityID{id}
	}
	keys := []domain.EntityID{c.ID}
	if ext := c.Entity.ExternalID(); ext != "" && ext != c.ID.Key() {
		keys = append(keys, domain.Opaque(ext))
	}
	return keys
}

// roleReferences collects from's references under role across all of its
// keys, without duplicates
func (st *State) roleReferences(from domain.EntityID, role store.Role) []domain.EntityID {
	var out []domain.EntityID
	seen := make(map[string]bool)
	for _, key := range st.sourceKeys(from) {
		for _, ref := range st.References.ReferencesWithRole(key, role) {
			if seen[ref.Key()] {
				continue
			}
			seen[ref.Key()] = true
			out = append(out, ref)
		}
	}
	return out
}

// filterValue returns the first in-band wavelength among the filters that
// owners reference under role
func (st *State) filterValue(owners []domain.EntityID, role store.Role) func() (float64, bool) {
	return func() (float64, bool) {
		visited := make(map[string]bool)
		for _, owner := range owners {
			if c, ok := st.Containers.Get(owner); ok {
				if visited[c.ID.Key()] {
					continue
				}
				visited[c.ID.Key()] = true
			}
			for _, ref := range st.roleReferences(owner, role) {
				c, ok := st.Containers.Get(ref)
				if !ok {
					continue
				}
				f, ok := c.Entity.(*domain.Filter)
				if !ok {
					continue
				}
				if v, ok := f.Wavelength(); ok {
					if _, inBand := st.Policy.Band(v); inBand {
						return v, true
					}
				}
			}
		}
		return 0, false
	}
}

// lightSourceValue returns the first in-band wavelength among the referenced
// light sources that emit at a defined wavelength
func (st *State) lightSourceValue(channel domain.EntityID) func() (float64, bool) {
	return func() (float64, bool) {
		for _, ref := range st.roleReferences(channel, store.RoleLightSource) {
			c, ok := st.Containers.Get(ref)
			if !ok {
				continue
			}
			if e, ok := c.Entity.(domain.WavelengthEmitter); ok {
				if v, ok := e.EmissionWavelength(); ok {
					if _, inBand := st.Policy.Band(v); inBand {
						return v, true
					}
				}
			}
		}
		return 0, false
	}
}

func formatWavelength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
