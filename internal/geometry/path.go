package geometry

import (
	"strconv"
	"strings"
)

// SpectrumToPath resamples (x, y) onto grid and maps each sample into rect,
// so zoomed views keep the grid's density whatever the source sampling.
func SpectrumToPath(x, y, grid []float64, rect Rect, r DataRange, piecewise bool) []Point {
	points := make([]Point, len(grid))
	for i, wx := range grid {
		points[i] = DataToSVG(wx, InterpolateAt(x, y, wx), rect, r, piecewise)
	}
	return points
}

const catmullRomTension = 1.0 / 6

// SmoothPathD renders points as an SVG path through every point, using
// Catmull-Rom segments converted to cubic Béziers.
func SmoothPathD(points []Point) string {
	switch len(points) {
	case 0:
		return ""
	case 1:
		return "M " + num(points[0].X) + " " + num(points[0].Y)
	}

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(num(points[0].X))
	b.WriteByte(' ')
	b.WriteString(num(points[0].Y))

	last := len(points) - 1
	for i := 0; i < last; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, last)]

		cp1 := Point{X: p1.X + (p2.X-p0.X)*catmullRomTension, Y: p1.Y + (p2.Y-p0.Y)*catmullRomTension}
		cp2 := Point{X: p2.X - (p3.X-p1.X)*catmullRomTension, Y: p2.Y - (p3.Y-p1.Y)*catmullRomTension}

		b.WriteString(" C ")
		b.WriteString(num(cp1.X))
		b.WriteByte(' ')
		b.WriteString(num(cp1.Y))
		b.WriteString(", ")
		b.WriteString(num(cp2.X))
		b.WriteByte(' ')
		b.WriteString(num(cp2.Y))
		b.WriteString(", ")
		b.WriteString(num(p2.X))
		b.WriteByte(' ')
		b.WriteString(num(p2.Y))
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
