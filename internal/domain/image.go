package domain

// Image is the root of an acquired image hierarchy
type Image struct {
	Ident           `yaml:",inline"`
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	AcquisitionDate string `json:"acquisition_date,omitempty" yaml:"acquisition_date,omitempty"`
}

func (*Image) EntityType() EntityType { return TypeImage }
func (i *Image) GetName() string      { return i.Name }
func (i *Image) SetName(name string)  { i.Name = name }

// Pixels describes the pixel buffer of an image
type Pixels struct {
	Ident          `yaml:",inline"`
	DimensionOrder string   `json:"dimension_order,omitempty" yaml:"dimension_order,omitempty"`
	PixelType      string   `json:"pixel_type,omitempty" yaml:"pixel_type,omitempty"`
	SizeX          *int     `json:"size_x,omitempty" yaml:"size_x,omitempty"`
	SizeY          *int     `json:"size_y,omitempty" yaml:"size_y,omitempty"`
	SizeZ          *int     `json:"size_z,omitempty" yaml:"size_z,omitempty"`
	SizeC          *int     `json:"size_c,omitempty" yaml:"size_c,omitempty"`
	SizeT          *int     `json:"size_t,omitempty" yaml:"size_t,omitempty"`
	PhysicalSizeX  *float64 `json:"physical_size_x,omitempty" yaml:"physical_size_x,omitempty"`
	PhysicalSizeY  *float64 `json:"physical_size_y,omitempty" yaml:"physical_size_y,omitempty"`
	PhysicalSizeZ  *float64 `json:"physical_size_z,omitempty" yaml:"physical_size_z,omitempty"`
	TimeIncrement  *float64 `json:"time_increment,omitempty" yaml:"time_increment,omitempty"`
}

func (*Pixels) EntityType() EntityType { return TypePixels }

// Channel is one logical channel of an image. Wavelengths are in nanometres.
type Channel struct {
	Ident                `yaml:",inline"`
	Name                 string           `json:"name,omitempty" yaml:"name,omitempty"`
	Fluor                string           `json:"fluor,omitempty" yaml:"fluor,omitempty"`
	SamplesPerPixel      *int             `json:"samples_per_pixel,omitempty" yaml:"samples_per_pixel,omitempty"`
	EmissionWavelength   *float64         `json:"emission_wavelength,omitempty" yaml:"emission_wavelength,omitempty"`
	ExcitationWavelength *float64         `json:"excitation_wavelength,omitempty" yaml:"excitation_wavelength,omitempty"`
	PinholeSize          *float64         `json:"pinhole_size,omitempty" yaml:"pinhole_size,omitempty"`
	ContrastMethod       ContrastMethod   `json:"contrast_method,omitempty" yaml:"contrast_method,omitempty"`
	IlluminationType     IlluminationType `json:"illumination_type,omitempty" yaml:"illumination_type,omitempty"`
	AcquisitionMode      AcquisitionMode  `json:"acquisition_mode,omitempty" yaml:"acquisition_mode,omitempty"`
	Color                *Color           `json:"color,omitempty" yaml:"color,omitempty"`
}

func (*Channel) EntityType() EntityType { return TypeChannel }
func (c *Channel) GetName() string      { return c.Name }
func (c *Channel) SetName(name string)  { c.Name = name }

// Plane records per-plane timing and stage position
type Plane struct {
	Ident        `yaml:",inline"`
	TheZ         *int     `json:"the_z,omitempty" yaml:"the_z,omitempty"`
	TheC         *int     `json:"the_c,omitempty" yaml:"the_c,omitempty"`
	TheT         *int     `json:"the_t,omitempty" yaml:"the_t,omitempty"`
	DeltaT       *float64 `json:"delta_t,omitempty" yaml:"delta_t,omitempty"`
	ExposureTime *float64 `json:"exposure_time,omitempty" yaml:"exposure_time,omitempty"`
	PositionX    *float64 `json:"position_x,omitempty" yaml:"position_x,omitempty"`
	PositionY    *float64 `json:"position_y,omitempty" yaml:"position_y,omitempty"`
	PositionZ    *float64 `json:"position_z,omitempty" yaml:"position_z,omitempty"`
}

func (*Plane) EntityType() EntityType { return TypePlane }

// IsPlaceholder reports whether only Z/C/T bookkeeping was recorded
func (p *Plane) IsPlaceholder() bool {
	return p.DeltaT == nil && p.ExposureTime == nil &&
		p.PositionX == nil && p.PositionY == nil && p.PositionZ == nil
}

// LightPath is the per-channel optical path. Its filters and dichroic are
// recorded as role references rather than fields.
type LightPath struct {
	Ident `yaml:",inline"`
}

func (*LightPath) EntityType() EntityType { return TypeLightPath }
