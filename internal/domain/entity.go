package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedEntityType is returned when asked to construct a type outside
// the closed set below
var ErrUnsupportedEntityType = errors.New("unsupported entity type")

// EntityType names a kind of metadata object
type EntityType string

const (
	TypeImage     EntityType = "Image"
	TypePixels    EntityType = "Pixels"
	TypeChannel   EntityType = "Channel"
	TypePlane     EntityType = "Plane"
	TypeLightPath EntityType = "LightPath"

	TypeInstrument              EntityType = "Instrument"
	TypeDetector                EntityType = "Detector"
	TypeObjective               EntityType = "Objective"
	TypeFilter                  EntityType = "Filter"
	TypeFilterSet               EntityType = "FilterSet"
	TypeDichroic                EntityType = "Dichroic"
	TypeLaser                   EntityType = "Laser"
	TypeArc                     EntityType = "Arc"
	TypeFilament                EntityType = "Filament"
	TypeLightEmittingDiode      EntityType = "LightEmittingDiode"
	TypeGenericExcitationSource EntityType = "GenericExcitationSource"

	TypePlate            EntityType = "Plate"
	TypeWell             EntityType = "Well"
	TypeWellSample       EntityType = "WellSample"
	TypePlateAcquisition EntityType = "PlateAcquisition"
	TypeScreen           EntityType = "Screen"
	TypeReagent          EntityType = "Reagent"

	TypeROI       EntityType = "ROI"
	TypeRectangle EntityType = "Rectangle"
	TypeEllipse   EntityType = "Ellipse"
	TypePoint     EntityType = "Point"
	TypeLine      EntityType = "Line"
	TypePolygon   EntityType = "Polygon"
	TypePolyline  EntityType = "Polyline"
	TypeMask      EntityType = "Mask"
	TypeLabel     EntityType = "Label"

	TypeExperimenter EntityType = "Experimenter"
	TypeExperiment   EntityType = "Experiment"
)

// Entity is the mutable payload held by a container
type Entity interface {
	EntityType() EntityType
	ExternalID() string
	SetExternalID(id string)
}

// Named is implemented by entities that carry a display name
type Named interface {
	GetName() string
	SetName(name string)
}

// Placeholder is implemented by entities that may exist only to hold
// positional bookkeeping. IsPlaceholder reports whether nothing beyond
// coordinates was ever recorded.
type Placeholder interface {
	IsPlaceholder() bool
}

// WavelengthEmitter is implemented by light sources that emit at a defined
// wavelength
type WavelengthEmitter interface {
	EmissionWavelength() (float64, bool)
}

// Ident carries the identifier the source file assigned to an entity
type Ident struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// ExternalID returns the source-assigned identifier
func (i *Ident) ExternalID() string { return i.ID }

// SetExternalID records the source-assigned identifier
func (i *Ident) SetExternalID(id string) { i.ID = id }

// New default-constructs an entity of type t
func New(t EntityType) (Entity, error) {
	switch t {
	case TypeImage:
		return &Image{}, nil
	case TypePixels:
		return &Pixels{}, nil
	case TypeChannel:
		return &Channel{}, nil
	case TypePlane:
		return &Plane{}, nil
	case TypeLightPath:
		return &LightPath{}, nil
	case TypeInstrument:
		return &Instrument{}, nil
	case TypeDetector:
		return &Detector{}, nil
	case TypeObjective:
		return &Objective{}, nil
	case TypeFilter:
		return &Filter{}, nil
	case TypeFilterSet:
		return &FilterSet{}, nil
	case TypeDichroic:
		return &Dichroic{}, nil
	case TypeLaser:
		return &Laser{}, nil
	case TypeArc:
		return &Arc{}, nil
	case TypeFilament:
		return &Filament{}, nil
	case TypeLightEmittingDiode:
		return &LightEmittingDiode{}, nil
	case TypeGenericExcitationSource:
		return &GenericExcitationSource{}, nil
	case TypePlate:
		return &Plate{}, nil
	case TypeWell:
		return &Well{}, nil
	case TypeWellSample:
		return &WellSample{}, nil
	case TypePlateAcquisition:
		return &PlateAcquisition{}, nil
	case TypeScreen:
		return &Screen{}, nil
	case TypeReagent:
		return &Reagent{}, nil
	case TypeROI:
		return &ROI{}, nil
	case TypeRectangle:
		return &Rectangle{}, nil
	case TypeEllipse:
		return &Ellipse{}, nil
	case TypePoint:
		return &Point{}, nil
	case TypeLine:
		return &Line{}, nil
	case TypePolygon:
		return &Polygon{}, nil
	case TypePolyline:
		return &Polyline{}, nil
	case TypeMask:
		return &Mask{}, nil
	case TypeLabel:
		return &Label{}, nil
	case TypeExperimenter:
		return &Experimenter{}, nil
	case TypeExperiment:
		return &Experiment{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, string(t))
}

// Supported reports whether New can construct t
func Supported(t EntityType) bool {
	_, ok := schemas[t]
	return ok
}

// IsLightSource reports whether t is one of the light source subtypes
func IsLightSource(t EntityType) bool {
	switch t {
	case TypeLaser, TypeArc, TypeFilament, TypeLightEmittingDiode, TypeGenericExcitationSource:
		return true
	}
	return false
}

// IsShape reports whether t is one of the ROI shape subtypes
func IsShape(t EntityType) bool {
	switch t {
	case TypeRectangle, TypeEllipse, TypePoint, TypeLine, TypePolygon, TypePolyline, TypeMask, TypeLabel:
		return true
	}
	return false
}
