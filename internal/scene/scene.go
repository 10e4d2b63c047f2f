// Package scene holds the renderer-facing drawing model: a flat list of
// typed drawing nodes plus an explicit canvas-bounds accumulator. The
// scene is emitted as an SVG document in one pass, with icon files
// embedded as base64 data URIs so the output is self-contained.
package scene

// Bounds tracks the extent of drawn content. Drawing steps extend it
// explicitly instead of sharing mutable maximums through closures.
type Bounds struct {
	MaxX float64
	MaxY float64
}

// Extend grows the bounds to include the point (x, y).
func (b *Bounds) Extend(x, y float64) {
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Union grows the bounds to include another bounds value.
func (b *Bounds) Union(other Bounds) {
	b.Extend(other.MaxX, other.MaxY)
}

// Node is one drawing instruction.
type Node interface {
	extent() (maxX, maxY float64)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Rx          float64
	Dash        string
}

func (r Rect) extent() (float64, float64) { return r.X + r.W, r.Y + r.H }

// Line is a straight stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
}

func (l Line) extent() (float64, float64) {
	return maxf(l.X1, l.X2), maxf(l.Y1, l.Y2)
}

// Text is a single text run. X is interpreted per Anchor
// ("start", "middle" or "end"; empty means start); Y is the baseline.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Fill    string
	Anchor  string
	Weight  string
}

func (t Text) extent() (float64, float64) { return t.X, t.Y }

// Circle is a filled or stroked circle.
type Circle struct {
	X, Y, R     float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (c Circle) extent() (float64, float64) { return c.X + c.R, c.Y + c.R }

// Icon places the SVG file at Path into the given box.
type Icon struct {
	X, Y, W, H float64
	Path       string
}

func (i Icon) extent() (float64, float64) { return i.X + i.W, i.Y + i.H }

// Canvas collects drawing nodes and the resulting bounds.
type Canvas struct {
	nodes  []Node
	bounds Bounds
}

// Add appends a node and extends the canvas bounds by its extent.
func (c *Canvas) Add(nodes ...Node) {
	for _, n := range nodes {
		c.nodes = append(c.nodes, n)
		x, y := n.extent()
		c.bounds.Extend(x, y)
	}
}

// Extend grows the canvas bounds without drawing, for whitespace that
// must survive into the document size.
func (c *Canvas) Extend(x, y float64) {
	c.bounds.Extend(x, y)
}

// Bounds returns the current canvas bounds.
func (c *Canvas) Bounds() Bounds {
	return c.bounds
}

// Nodes returns the drawing nodes in insertion order.
func (c *Canvas) Nodes() []Node {
	return c.nodes
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
