package domain

// Plate is a multi-well sample holder
type Plate struct {
	Ident                  `yaml:",inline"`
	Name                   string           `json:"name,omitempty" yaml:"name,omitempty"`
	Description            string           `json:"description,omitempty" yaml:"description,omitempty"`
	Status                 string           `json:"status,omitempty" yaml:"status,omitempty"`
	ExternalIdentifier     string           `json:"external_identifier,omitempty" yaml:"external_identifier,omitempty"`
	Rows                   *int             `json:"rows,omitempty" yaml:"rows,omitempty"`
	Columns                *int             `json:"columns,omitempty" yaml:"columns,omitempty"`
	RowNamingConvention    NamingConvention `json:"row_naming_convention,omitempty" yaml:"row_naming_convention,omitempty"`
	ColumnNamingConvention NamingConvention `json:"column_naming_convention,omitempty" yaml:"column_naming_convention,omitempty"`
	WellOriginX            *float64         `json:"well_origin_x,omitempty" yaml:"well_origin_x,omitempty"`
	WellOriginY            *float64         `json:"well_origin_y,omitempty" yaml:"well_origin_y,omitempty"`
	FieldIndex             *int             `json:"field_index,omitempty" yaml:"field_index,omitempty"`
}

func (*Plate) EntityType() EntityType { return TypePlate }
func (p *Plate) GetName() string      { return p.Name }
func (p *Plate) SetName(name string)  { p.Name = name }

// Well is one well of a plate. Row and Column are zero based.
type Well struct {
	Ident               `yaml:",inline"`
	Row                 *int   `json:"row,omitempty" yaml:"row,omitempty"`
	Column              *int   `json:"column,omitempty" yaml:"column,omitempty"`
	ExternalDescription string `json:"external_description,omitempty" yaml:"external_description,omitempty"`
	ExternalIdentifier  string `json:"external_identifier,omitempty" yaml:"external_identifier,omitempty"`
	Type                string `json:"type,omitempty" yaml:"type,omitempty"`
	Color               *Color `json:"color,omitempty" yaml:"color,omitempty"`
}

func (*Well) EntityType() EntityType { return TypeWell }

// WellSample is one field of view inside a well
type WellSample struct {
	Ident     `yaml:",inline"`
	PositionX *float64 `json:"position_x,omitempty" yaml:"position_x,omitempty"`
	PositionY *float64 `json:"position_y,omitempty" yaml:"position_y,omitempty"`
	Timepoint string   `json:"timepoint,omitempty" yaml:"timepoint,omitempty"`
	Index     *int     `json:"index,omitempty" yaml:"index,omitempty"`
}

func (*WellSample) EntityType() EntityType { return TypeWellSample }

// PlateAcquisition is one acquisition run over a plate
type PlateAcquisition struct {
	Ident             `yaml:",inline"`
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	StartTime         string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime           string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	MaximumFieldCount *int   `json:"maximum_field_count,omitempty" yaml:"maximum_field_count,omitempty"`
}

func (*PlateAcquisition) EntityType() EntityType { return TypePlateAcquisition }
func (p *PlateAcquisition) GetName() string      { return p.Name }
func (p *PlateAcquisition) SetName(name string)  { p.Name = name }

// Screen groups plates run under one protocol
type Screen struct {
	Ident                 `yaml:",inline"`
	Name                  string `json:"name,omitempty" yaml:"name,omitempty"`
	Description           string `json:"description,omitempty" yaml:"description,omitempty"`
	Type                  string `json:"type,omitempty" yaml:"type,omitempty"`
	ProtocolIdentifier    string `json:"protocol_identifier,omitempty" yaml:"protocol_identifier,omitempty"`
	ProtocolDescription   string `json:"protocol_description,omitempty" yaml:"protocol_description,omitempty"`
	ReagentSetIdentifier  string `json:"reagent_set_identifier,omitempty" yaml:"reagent_set_identifier,omitempty"`
	ReagentSetDescription string `json:"reagent_set_description,omitempty" yaml:"reagent_set_description,omitempty"`
}

func (*Screen) EntityType() EntityType { return TypeScreen }
func (s *Screen) GetName() string      { return s.Name }
func (s *Screen) SetName(name string)  { s.Name = name }

// Reagent is a compound applied to wells of a screen
type Reagent struct {
	Ident             `yaml:",inline"`
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	ReagentIdentifier string `json:"reagent_identifier,omitempty" yaml:"reagent_identifier,omitempty"`
}

func (*Reagent) EntityType() EntityType { return TypeReagent }
func (r *Reagent) GetName() string      { return r.Name }
func (r *Reagent) SetName(name string)  { r.Name = name }
