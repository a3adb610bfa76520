package domain

// Instrument groups the hardware used for an acquisition. The stand fields
// are flattened from the microscope description.
type Instrument struct {
	Ident          `yaml:",inline"`
	Manufacturer   string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model          string `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber   string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	MicroscopeType string `json:"microscope_type,omitempty" yaml:"microscope_type,omitempty"`
}

func (*Instrument) EntityType() EntityType { return TypeInstrument }

// Detector is a camera or point detector
type Detector struct {
	Ident        `yaml:",inline"`
	Manufacturer string       `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string       `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber string       `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Type         DetectorType `json:"type,omitempty" yaml:"type,omitempty"`
	Gain         *float64     `json:"gain,omitempty" yaml:"gain,omitempty"`
	Offset       *float64     `json:"offset,omitempty" yaml:"offset,omitempty"`
	Voltage      *float64     `json:"voltage,omitempty" yaml:"voltage,omitempty"`
	Zoom         *float64     `json:"zoom,omitempty" yaml:"zoom,omitempty"`
}

func (*Detector) EntityType() EntityType { return TypeDetector }

// Objective is a lens
type Objective struct {
	Ident                `yaml:",inline"`
	Manufacturer         string     `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model                string     `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber         string     `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Correction           Correction `json:"correction,omitempty" yaml:"correction,omitempty"`
	Immersion            Immersion  `json:"immersion,omitempty" yaml:"immersion,omitempty"`
	LensNA               *float64   `json:"lens_na,omitempty" yaml:"lens_na,omitempty"`
	NominalMagnification *float64   `json:"nominal_magnification,omitempty" yaml:"nominal_magnification,omitempty"`
	WorkingDistance      *float64   `json:"working_distance,omitempty" yaml:"working_distance,omitempty"`
	Iris                 *bool      `json:"iris,omitempty" yaml:"iris,omitempty"`
}

func (*Objective) EntityType() EntityType { return TypeObjective }

// TransmittanceRange is the pass band of a filter, in nanometres
type TransmittanceRange struct {
	CutIn           *float64 `json:"cut_in,omitempty" yaml:"cut_in,omitempty"`
	CutOut          *float64 `json:"cut_out,omitempty" yaml:"cut_out,omitempty"`
	CutInTolerance  *float64 `json:"cut_in_tolerance,omitempty" yaml:"cut_in_tolerance,omitempty"`
	CutOutTolerance *float64 `json:"cut_out_tolerance,omitempty" yaml:"cut_out_tolerance,omitempty"`
	Transmittance   *float64 `json:"transmittance,omitempty" yaml:"transmittance,omitempty"`
}

// Filter is a single optical filter
type Filter struct {
	Ident              `yaml:",inline"`
	Manufacturer       string             `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model              string             `json:"model,omitempty" yaml:"model,omitempty"`
	LotNumber          string             `json:"lot_number,omitempty" yaml:"lot_number,omitempty"`
	FilterWheel        string             `json:"filter_wheel,omitempty" yaml:"filter_wheel,omitempty"`
	Type               FilterType         `json:"type,omitempty" yaml:"type,omitempty"`
	TransmittanceRange TransmittanceRange `json:"transmittance_range" yaml:"transmittance_range"`
}

func (*Filter) EntityType() EntityType { return TypeFilter }

// Wavelength returns the cut-in of the pass band, falling back to the cut-out
func (f *Filter) Wavelength() (float64, bool) {
	if f.TransmittanceRange.CutIn != nil {
		return *f.TransmittanceRange.CutIn, true
	}
	if f.TransmittanceRange.CutOut != nil {
		return *f.TransmittanceRange.CutOut, true
	}
	return 0, false
}

// FilterSet bundles excitation filters, emission filters and a dichroic.
// The members are recorded as role references.
type FilterSet struct {
	Ident        `yaml:",inline"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	LotNumber    string `json:"lot_number,omitempty" yaml:"lot_number,omitempty"`
}

func (*FilterSet) EntityType() EntityType { return TypeFilterSet }

// Dichroic is a beam splitter
type Dichroic struct {
	Ident        `yaml:",inline"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	LotNumber    string `json:"lot_number,omitempty" yaml:"lot_number,omitempty"`
}

func (*Dichroic) EntityType() EntityType { return TypeDichroic }

// LightSourceBase holds the fields shared by every light source
type LightSourceBase struct {
	Manufacturer string   `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string   `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Power        *float64 `json:"power,omitempty" yaml:"power,omitempty"`
}

// Laser emits at a defined wavelength
type Laser struct {
	Ident                   `yaml:",inline"`
	LightSourceBase         `yaml:",inline"`
	Type                    LaserType   `json:"type,omitempty" yaml:"type,omitempty"`
	LaserMedium             LaserMedium `json:"laser_medium,omitempty" yaml:"laser_medium,omitempty"`
	Wavelength              *float64    `json:"wavelength,omitempty" yaml:"wavelength,omitempty"`
	FrequencyMultiplication *int        `json:"frequency_multiplication,omitempty" yaml:"frequency_multiplication,omitempty"`
	Tuneable                *bool       `json:"tuneable,omitempty" yaml:"tuneable,omitempty"`
	Pulse                   string      `json:"pulse,omitempty" yaml:"pulse,omitempty"`
	PockelCell              *bool       `json:"pockel_cell,omitempty" yaml:"pockel_cell,omitempty"`
	RepetitionRate          *float64    `json:"repetition_rate,omitempty" yaml:"repetition_rate,omitempty"`
}

func (*Laser) EntityType() EntityType { return TypeLaser }

// EmissionWavelength implements WavelengthEmitter
func (l *Laser) EmissionWavelength() (float64, bool) {
	if l.Wavelength == nil {
		return 0, false
	}
	return *l.Wavelength, true
}

// Arc is an arc lamp
type Arc struct {
	Ident           `yaml:",inline"`
	LightSourceBase `yaml:",inline"`
	Type            ArcType `json:"type,omitempty" yaml:"type,omitempty"`
}

func (*Arc) EntityType() EntityType { return TypeArc }

// Filament is an incandescent or halogen lamp
type Filament struct {
	Ident           `yaml:",inline"`
	LightSourceBase `yaml:",inline"`
	Type            FilamentType `json:"type,omitempty" yaml:"type,omitempty"`
}

func (*Filament) EntityType() EntityType { return TypeFilament }

// LightEmittingDiode is an LED source
type LightEmittingDiode struct {
	Ident           `yaml:",inline"`
	LightSourceBase `yaml:",inline"`
}

func (*LightEmittingDiode) EntityType() EntityType { return TypeLightEmittingDiode }

// GenericExcitationSource is any other light source
type GenericExcitationSource struct {
	Ident           `yaml:",inline"`
	LightSourceBase `yaml:",inline"`
}

func (*GenericExcitationSource) EntityType() EntityType { return TypeGenericExcitationSource }
