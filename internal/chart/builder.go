package chart

import (
	"github.com/musictags/tagchart/internal/models"
	"github.com/musictags/tagchart/internal/ranking"
)

const (
	baseWidth = 800
	height    = 500
	yAxisPad  = 2
	widthPerN = 5
	dotRadius = 10
)

// Point is one marker on the chart: a tag label at a categorical X
// position with its count on the Y axis.
type Point struct {
	Label string
	Count int
}

// Spec is an abstract description of the tag chart: axis ranges and
// categories, the point set, tooltip labels, and pixel dimensions. It is
// handed to a renderer (RenderSVG) and to the page template for hover
// tooltips.
type Spec struct {
	Artist     string
	Categories []string
	Points     []Point
	YMin       int
	YMax       int
	Width      int
	Height     int
	YAxisTitle string
}

// Build maps ranked tags into chart geometry. ranked must be ordered
// highest count first (the output of ranking.TopTags) and non-empty; n is
// the requested tag count, used for the lower Y bound and the width scale.
//
// The Y range pads the extremes by 2 and never dips below zero. The X
// categories are the centered tag values, so the most frequent tag sits
// at the rightmost-of-center position with counts descending outward.
func Build(artist string, ranked []models.RankedTag, n int) Spec {
	maxRange := ranked[0].Count
	minLimit := min(n-1, len(ranked)-1)
	minRange := ranked[minLimit].Count

	values := make([]string, len(ranked))
	counts := make([]int, len(ranked))
	for i, rt := range ranked {
		values[i] = rt.Value
		counts[i] = rt.Count
	}
	values = ranking.Center(values)
	counts = ranking.Center(counts)

	points := make([]Point, len(values))
	for i := range values {
		points[i] = Point{Label: values[i], Count: counts[i]}
	}

	return Spec{
		Artist:     artist,
		Categories: values,
		Points:     points,
		YMin:       max(0, minRange-yAxisPad),
		YMax:       maxRange + yAxisPad,
		Width:      baseWidth + n*widthPerN,
		Height:     height,
		YAxisTitle: "Numbers of tags for " + artist,
	}
}
