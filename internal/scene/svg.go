package scene

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo/float"
)

// WriteSVG emits the canvas as an SVG document. Every node is offset by
// margin on both axes and the document is sized from the canvas bounds
// plus the margin frame. Icon files are read once each and embedded as
// data URIs.
func (c *Canvas) WriteSVG(w io.Writer, margin float64) error {
	doc := svg.New(w)
	doc.Start(c.bounds.MaxX+2*margin, c.bounds.MaxY+2*margin)

	icons := map[string]string{} // path -> data URI
	for _, n := range c.nodes {
		switch v := n.(type) {
		case Rect:
			doc.Rect(v.X+margin, v.Y+margin, v.W, v.H, rectAttrs(v)...)
		case Line:
			doc.Line(v.X1+margin, v.Y1+margin, v.X2+margin, v.Y2+margin, lineStyle(v))
		case Text:
			doc.Text(v.X+margin, v.Y+margin, v.Content, textStyle(v))
		case Circle:
			doc.Circle(v.X+margin, v.Y+margin, v.R, circleStyle(v))
		case Icon:
			uri, ok := icons[v.Path]
			if !ok {
				var err error
				uri, err = dataURI(v.Path)
				if err != nil {
					return err
				}
				icons[v.Path] = uri
			}
			// svgo's Image helper predates data URIs with embedded
			// semicolons; emit the element directly.
			fmt.Fprintf(doc.Writer,
				"<image x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" xlink:href=\"%s\" />\n",
				v.X+margin, v.Y+margin, v.W, v.H, uri)
		}
	}

	doc.End()
	return nil
}

func dataURI(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read icon %s: %w", path, err)
	}
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = "image/svg+xml"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

// rectAttrs builds the svgo arguments for a rectangle: the style
// string, plus rx as a presentation attribute since SVG 1.1 renderers
// do not honor it as a CSS property.
func rectAttrs(r Rect) []string {
	fill := r.Fill
	if fill == "" {
		fill = "none"
	}
	style := fmt.Sprintf("fill:%s", fill)
	if r.Stroke != "" {
		style += fmt.Sprintf(";stroke:%s;stroke-width:%g", r.Stroke, strokeWidth(r.StrokeWidth))
	}
	if r.Dash != "" {
		style += ";stroke-dasharray:" + r.Dash
	}
	attrs := []string{style}
	if r.Rx > 0 {
		attrs = append(attrs, fmt.Sprintf("rx=%q", fmt.Sprintf("%g", r.Rx)))
	}
	return attrs
}

func lineStyle(l Line) string {
	stroke := l.Stroke
	if stroke == "" {
		stroke = "#000000"
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", stroke, strokeWidth(l.StrokeWidth))
}

func textStyle(t Text) string {
	size := t.Size
	if size == 0 {
		size = 14
	}
	fill := t.Fill
	if fill == "" {
		fill = "#000000"
	}
	style := fmt.Sprintf("font-size:%gpx;font-family:sans-serif;fill:%s", size, fill)
	if t.Anchor != "" {
		style += ";text-anchor:" + t.Anchor
	}
	if t.Weight != "" {
		style += ";font-weight:" + t.Weight
	}
	return style
}

func circleStyle(c Circle) string {
	fill := c.Fill
	if fill == "" {
		fill = "none"
	}
	style := fmt.Sprintf("fill:%s", fill)
	if c.Stroke != "" {
		style += fmt.Sprintf(";stroke:%s;stroke-width:%g", c.Stroke, strokeWidth(c.StrokeWidth))
	}
	return style
}

func strokeWidth(w float64) float64 {
	if w == 0 {
		return 2
	}
	return w
}
