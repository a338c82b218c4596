package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	dotColor       = drawing.Color{R: 0, G: 0, B: 128, A: 128} // translucent navy
	canvasFill     = drawing.ColorFromHex("f5f5f5")
	backgroundFill = drawing.ColorFromHex("fafafa")
	gridLineColor  = drawing.ColorWhite
)

// pointStyle renders markers only, no connecting line.
func pointStyle() gochart.Style {
	return gochart.Style{
		StrokeWidth: 0,
		DotWidth:    dotRadius,
		DotColor:    dotColor,
	}
}

// RenderSVG renders the chart spec as an SVG document suitable for
// embedding in an HTML page. The X axis is categorical: points sit at
// integer positions labelled with the centered tag values.
func RenderSVG(spec Spec) ([]byte, error) {
	if len(spec.Points) == 0 {
		return nil, fmt.Errorf("chart spec has no points")
	}

	xs := make([]float64, len(spec.Points))
	ys := make([]float64, len(spec.Points))
	ticks := make([]gochart.Tick, len(spec.Points))
	for i, p := range spec.Points {
		xs[i] = float64(i)
		ys[i] = float64(p.Count)
		ticks[i] = gochart.Tick{Value: float64(i), Label: p.Label}
	}

	// go-chart needs at least two X values per series; duplicate a lone
	// point in place so the rendering is unchanged.
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	ch := gochart.Chart{
		Width:  spec.Width,
		Height: spec.Height,
		Background: gochart.Style{
			FillColor: backgroundFill,
			Padding:   gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: gochart.Style{FillColor: canvasFill},
		XAxis: gochart.XAxis{
			Name:  "Tags",
			Ticks: ticks,
			Range: &gochart.ContinuousRange{
				Min: -0.5,
				Max: float64(len(spec.Points)) - 0.5,
			},
			TickStyle: gochart.Style{TextRotationDegrees: 45.0},
			GridMajorStyle: gochart.Style{
				StrokeColor: gridLineColor,
				StrokeWidth: 1.0,
			},
		},
		YAxis: gochart.YAxis{
			Name: spec.YAxisTitle,
			Range: &gochart.ContinuousRange{
				Min: float64(spec.YMin),
				Max: float64(spec.YMax),
			},
			GridMajorStyle: gochart.Style{
				StrokeColor: gridLineColor,
				StrokeWidth: 1.0,
			},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    spec.Artist,
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(),
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return buf.Bytes(), nil
}
