package consolidate

import "omegraph/internal/domain"

// Band maps an inclusive wavelength range in nanometres to a display color
type Band struct {
	Name  string
	Min   float64
	Max   float64
	Color domain.Color
}

// Contains reports whether v falls inside the band
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Policy holds the tunable heuristics of the consolidation passes
type Policy struct {
	// Bands are tested in order; the first band containing a value wins.
	// Values outside every band are not usable as a display source.
	Bands []Band

	// Palette is assigned cyclically by channel position when no source
	// applies
	Palette []domain.Color

	// Neutral is used instead of the palette for channels that carry no
	// fluorescence
	Neutral domain.Color

	NonFluorescent func(*domain.Channel) bool

	// OverrideColors replaces colors already recorded on a channel
	OverrideColors bool

	// DefaultNames are given to materialized ancestors that carry a name
	DefaultNames map[domain.EntityType]string

	// Prunable lists the types removed when they hold only coordinates
	Prunable map[domain.EntityType]bool
}

// DefaultBands returns blue 400-500, green 500-560 and red 560-700 nm
func DefaultBands() []Band {
	return []Band{
		{Name: "blue", Min: 400, Max: 500, Color: domain.Blue},
		{Name: "green", Min: 500, Max: 560, Color: domain.Green},
		{Name: "red", Min: 560, Max: 700, Color: domain.Red},
	}
}

// DefaultNonFluorescentContrast lists contrast methods that imply a
// transmitted-light channel
func DefaultNonFluorescentContrast() []domain.ContrastMethod {
	return []domain.ContrastMethod{
		domain.ContrastBrightfield,
		domain.ContrastPhase,
		domain.ContrastDIC,
		domain.ContrastHoffmanModulation,
		domain.ContrastObliqueIllumination,
		domain.ContrastPolarizedLight,
		domain.ContrastDarkfield,
	}
}

// DefaultNonFluorescentIllumination lists illumination types that imply a
// transmitted-light channel
func DefaultNonFluorescentIllumination() []domain.IlluminationType {
	return []domain.IlluminationType{domain.IlluminationTransmitted, domain.IlluminationOblique}
}

// NonFluorescentBy classifies a channel as non-fluorescent when its contrast
// method or illumination type is in the given lists
func NonFluorescentBy(methods []domain.ContrastMethod, illumination []domain.IlluminationType) func(*domain.Channel) bool {
	cm := make(map[domain.ContrastMethod]bool, len(methods))
	for _, m := range methods {
		cm[m] = true
	}
	it := make(map[domain.IlluminationType]bool, len(illumination))
	for _, i := range illumination {
		it[i] = true
	}
	return func(ch *domain.Channel) bool {
		return cm[ch.ContrastMethod] || it[ch.IlluminationType]
	}
}

// DefaultPolicy returns the stock heuristics
func DefaultPolicy() Policy {
	return Policy{
		Bands:          DefaultBands(),
		Palette:        []domain.Color{domain.Red, domain.Green, domain.Blue},
		Neutral:        domain.White,
		NonFluorescent: NonFluorescentBy(DefaultNonFluorescentContrast(), DefaultNonFluorescentIllumination()),
		DefaultNames: map[domain.EntityType]string{
			domain.TypeImage:            "Image",
			domain.TypePlate:            "Plate",
			domain.TypeScreen:           "Screen",
			domain.TypeROI:              "ROI",
			domain.TypePlateAcquisition: "PlateAcquisition",
			domain.TypeReagent:          "Reagent",
		},
		Prunable: map[domain.EntityType]bool{domain.TypePlane: true},
	}
}

// Band returns the first band containing v
func (p Policy) Band(v float64) (Band, bool) {
	for _, b := range p.Bands {
		if b.Contains(v) {
			return b, true
		}
	}
	return Band{}, false
}

func (p Policy) defaultColor(ch *domain.Channel, position int) domain.Color {
	if (p.NonFluorescent != nil && p.NonFluorescent(ch)) || len(p.Palette) == 0 {
		return p.Neutral
	}
	if position < 0 {
		position = -position
	}
	return p.Palette[position%len(p.Palette)]
}
