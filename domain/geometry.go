package domain

// Equation is the line a·x + b·y = c.
type Equation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vertex is a feasible, deduplicated point with its objective value.
type Vertex struct {
	Point
	Value float64 `json:"value"`
}

type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Window is the plotting area [0, XMax] x [0, YMax].
type Window struct {
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// ConstraintSegment is the visible part of one constraint boundary.
type ConstraintSegment struct {
	Constraint int     `json:"constraint"`
	Segment    Segment `json:"segment"`
}

// PlotData carries everything a chart needs to draw the problem.
type PlotData struct {
	Window        Window              `json:"window"`
	Segments      []ConstraintSegment `json:"segments"`
	ObjectiveLine *Segment            `json:"objective_line,omitempty"`
	Points        []Point             `json:"points"`
}
