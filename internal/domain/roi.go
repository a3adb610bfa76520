package domain

// ROI is a region of interest grouping one or more shapes
type ROI struct {
	Ident       `yaml:",inline"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (*ROI) EntityType() EntityType { return TypeROI }
func (r *ROI) GetName() string      { return r.Name }
func (r *ROI) SetName(name string)  { r.Name = name }

// ShapeBase holds the fields shared by every shape
type ShapeBase struct {
	Text        string    `json:"text,omitempty" yaml:"text,omitempty"`
	TheZ        *int      `json:"the_z,omitempty" yaml:"the_z,omitempty"`
	TheC        *int      `json:"the_c,omitempty" yaml:"the_c,omitempty"`
	TheT        *int      `json:"the_t,omitempty" yaml:"the_t,omitempty"`
	FillColor   *Color    `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	StrokeColor *Color    `json:"stroke_color,omitempty" yaml:"stroke_color,omitempty"`
	StrokeWidth *float64  `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Locked      *bool     `json:"locked,omitempty" yaml:"locked,omitempty"`
	Transform   []float64 `json:"transform,omitempty" yaml:"transform,omitempty"`
}

type Rectangle struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

type Ellipse struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	RadiusX   *float64 `json:"radius_x,omitempty" yaml:"radius_x,omitempty"`
	RadiusY   *float64 `json:"radius_y,omitempty" yaml:"radius_y,omitempty"`
}

type Point struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

type Line struct {
	Ident       `yaml:",inline"`
	ShapeBase   `yaml:",inline"`
	X1          *float64 `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1          *float64 `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2          *float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2          *float64 `json:"y2,omitempty" yaml:"y2,omitempty"`
	MarkerStart string   `json:"marker_start,omitempty" yaml:"marker_start,omitempty"`
	MarkerEnd   string   `json:"marker_end,omitempty" yaml:"marker_end,omitempty"`
}

// Polygon is a closed polyline. Points is the "x,y x,y ..." list.
type Polygon struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	Points    string `json:"points,omitempty" yaml:"points,omitempty"`
}

type Polyline struct {
	Ident       `yaml:",inline"`
	ShapeBase   `yaml:",inline"`
	Points      string `json:"points,omitempty" yaml:"points,omitempty"`
	MarkerStart string `json:"marker_start,omitempty" yaml:"marker_start,omitempty"`
	MarkerEnd   string `json:"marker_end,omitempty" yaml:"marker_end,omitempty"`
}

// Mask is a binary mask anchored at X/Y
type Mask struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Label is a text annotation at a point
type Label struct {
	Ident     `yaml:",inline"`
	ShapeBase `yaml:",inline"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

func (*Rectangle) EntityType() EntityType { return TypeRectangle }
func (*Ellipse) EntityType() EntityType   { return TypeEllipse }
func (*Point) EntityType() EntityType     { return TypePoint }
func (*Line) EntityType() EntityType      { return TypeLine }
func (*Polygon) EntityType() EntityType   { return TypePolygon }
func (*Polyline) EntityType() EntityType  { return TypePolyline }
func (*Mask) EntityType() EntityType      { return TypeMask }
func (*Label) EntityType() EntityType     { return TypeLabel }
