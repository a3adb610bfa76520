package domain

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Index is a positional dimension used to build structural identities
type Index int

const (
	ImageIndex Index = iota
	PixelsIndex
	ChannelIndex
	PlaneIndex
	InstrumentIndex
	DetectorIndex
	ObjectiveIndex
	LightSourceIndex
	FilterIndex
	FilterSetIndex
	DichroicIndex
	PlateIndex
	WellIndex
	WellSampleIndex
	PlateAcquisitionIndex
	ScreenIndex
	ReagentIndex
	ROIIndex
	ShapeIndex
	ExperimenterIndex
	ExperimentIndex
)

var indexNames = [...]string{
	ImageIndex:            "image",
	PixelsIndex:           "pixels",
	ChannelIndex:          "channel",
	PlaneIndex:            "plane",
	InstrumentIndex:       "instrument",
	DetectorIndex:         "detector",
	ObjectiveIndex:        "objective",
	LightSourceIndex:      "light_source",
	FilterIndex:           "filter",
	FilterSetIndex:        "filter_set",
	DichroicIndex:         "dichroic",
	PlateIndex:            "plate",
	WellIndex:             "well",
	WellSampleIndex:       "well_sample",
	PlateAcquisitionIndex: "plate_acquisition",
	ScreenIndex:           "screen",
	ReagentIndex:          "reagent",
	ROIIndex:              "roi",
	ShapeIndex:            "shape",
	ExperimenterIndex:     "experimenter",
	ExperimentIndex:       "experiment",
}

// String returns the snake_case name of the index
func (i Index) String() string {
	if i >= 0 && int(i) < len(indexNames) {
		return indexNames[i]
	}
	return fmt.Sprintf("index(%d)", int(i))
}

// ParseIndex maps a snake_case name back to its Index
func ParseIndex(s string) (Index, bool) {
	for i, name := range indexNames {
		if name == s {
			return Index(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (i Index) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Index) UnmarshalText(b []byte) error {
	v, ok := ParseIndex(string(b))
	if !ok {
		return fmt.Errorf("unknown index %q", string(b))
	}
	*i = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler
func (i Index) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(i.String())
}

// UnmarshalMsgpack implements msgpack.Unmarshaler
func (i *Index) UnmarshalMsgpack(data []byte) error {
	var s string
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return err
	}
	return i.UnmarshalText([]byte(s))
}

// Coord is one positional coordinate of a structural identity
type Coord struct {
	Kind  Index `json:"kind" yaml:"kind"`
	Value int   `json:"value" yaml:"value"`
}

// At builds a coordinate
func At(kind Index, value int) Coord {
	return Coord{Kind: kind, Value: value}
}

// Lookup returns the value recorded for kind in an ordered coordinate list
func Lookup(coords []Coord, kind Index) (int, bool) {
	for _, c := range coords {
		if c.Kind == kind {
			return c.Value, true
		}
	}
	return 0, false
}

// Matches reports whether every coordinate in filter is present in coords
// with the same value. An empty filter matches everything.
func Matches(coords, filter []Coord) bool {
	for _, f := range filter {
		v, ok := Lookup(coords, f.Kind)
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}
