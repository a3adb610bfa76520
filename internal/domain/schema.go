package domain

import (
	"fmt"
	"sort"
)

// Schema describes the coordinate layout of an entity type and the type
// its coordinates imply as a parent
type Schema struct {
	Type   EntityType
	Layout []Index
	Parent EntityType // empty for roots
}

var schemas = map[EntityType]Schema{}

func register(t EntityType, parent EntityType, layout ...Index) {
	schemas[t] = Schema{Type: t, Layout: layout, Parent: parent}
}

func init() {
	register(TypeImage, "", ImageIndex)
	register(TypePixels, TypeImage, ImageIndex, PixelsIndex)
	register(TypeChannel, TypeImage, ImageIndex, ChannelIndex)
	register(TypePlane, TypePixels, ImageIndex, PixelsIndex, PlaneIndex)
	register(TypeLightPath, TypeChannel, ImageIndex, ChannelIndex)

	register(TypeInstrument, "", InstrumentIndex)
	register(TypeDetector, TypeInstrument, InstrumentIndex, DetectorIndex)
	register(TypeObjective, TypeInstrument, InstrumentIndex, ObjectiveIndex)
	register(TypeFilter, TypeInstrument, InstrumentIndex, FilterIndex)
	register(TypeFilterSet, TypeInstrument, InstrumentIndex, FilterSetIndex)
	register(TypeDichroic, TypeInstrument, InstrumentIndex, DichroicIndex)
	for _, t := range []EntityType{TypeLaser, TypeArc, TypeFilament, TypeLightEmittingDiode, TypeGenericExcitationSource} {
		register(t, TypeInstrument, InstrumentIndex, LightSourceIndex)
	}

	register(TypeScreen, "", ScreenIndex)
	register(TypeReagent, TypeScreen, ScreenIndex, ReagentIndex)
	register(TypePlate, "", PlateIndex)
	register(TypeWell, TypePlate, PlateIndex, WellIndex)
	register(TypeWellSample, TypeWell, PlateIndex, WellIndex, WellSampleIndex)
	register(TypePlateAcquisition, TypePlate, PlateIndex, PlateAcquisitionIndex)

	register(TypeROI, "", ROIIndex)
	for _, t := range []EntityType{TypeRectangle, TypeEllipse, TypePoint, TypeLine, TypePolygon, TypePolyline, TypeMask, TypeLabel} {
		register(t, TypeROI, ROIIndex, ShapeIndex)
	}

	register(TypeExperimenter, "", ExperimenterIndex)
	register(TypeExperiment, "", ExperimentIndex)
}

// SchemaOf returns the schema registered for t
func SchemaOf(t EntityType) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// Types lists every supported entity type in name order
func Types() []EntityType {
	out := make([]EntityType, 0, len(schemas))
	for t := range schemas {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Layout builds the ordered coordinates for t from positional values
func Layout(t EntityType, values ...int) ([]Coord, error) {
	s, ok := schemas[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntityType, string(t))
	}
	if len(values) != len(s.Layout) {
		return nil, fmt.Errorf("%s expects %d coordinates, got %d", t, len(s.Layout), len(values))
	}
	coords := make([]Coord, len(values))
	for i, v := range values {
		coords[i] = Coord{Kind: s.Layout[i], Value: v}
	}
	return coords, nil
}

// ParentOf projects coords onto the layout of t's parent type. It returns
// false when t is a root or coords lack a dimension the parent needs.
func ParentOf(t EntityType, coords []Coord) (EntityType, []Coord, bool) {
	s, ok := schemas[t]
	if !ok || s.Parent == "" {
		return "", nil, false
	}
	ps := schemas[s.Parent]
	parent := make([]Coord, 0, len(ps.Layout))
	for _, kind := range ps.Layout {
		v, ok := Lookup(coords, kind)
		if !ok {
			return "", nil, false
		}
		parent = append(parent, Coord{Kind: kind, Value: v})
	}
	return s.Parent, parent, true
}
