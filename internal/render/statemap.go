// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/ajstarks/svgo"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

// StatesTable flattens per-state means into a table for -table mode.
func StatesTable(means []riskindex.StateMean) *table.Table {
	states := make([]string, len(means))
	vals := make([]float64, len(means))
	for i, m := range means {
		states[i] = m.State
		vals[i] = m.Value
	}
	return new(table.Builder).
		Add("state", states).
		Add("mean val", vals).
		Done()
}

// stateTiles lays the states out as a grid cartogram, one square
// tile per state, in roughly geographic positions. Grid cartograms
// trade shape fidelity for equal visual weight per state, which is
// what a rate-per-100k map wants.
var stateTiles = map[string]struct{ Col, Row int }{
	"AK": {0, 0}, "ME": {10, 0},
	"VT": {9, 1}, "NH": {10, 1},
	"WA": {0, 2}, "ID": {1, 2}, "MT": {2, 2}, "ND": {3, 2}, "MN": {4, 2},
	"WI": {5, 2}, "MI": {7, 2}, "NY": {8, 2}, "MA": {9, 2}, "RI": {10, 2},
	"OR": {0, 3}, "NV": {1, 3}, "WY": {2, 3}, "SD": {3, 3}, "IA": {4, 3},
	"IL": {5, 3}, "IN": {6, 3}, "OH": {7, 3}, "PA": {8, 3}, "NJ": {9, 3}, "CT": {10, 3},
	"CA": {0, 4}, "UT": {1, 4}, "CO": {2, 4}, "NE": {3, 4}, "MO": {4, 4},
	"KY": {5, 4}, "WV": {6, 4}, "VA": {7, 4}, "MD": {8, 4}, "DE": {9, 4},
	"AZ": {1, 5}, "NM": {2, 5}, "KS": {3, 5}, "AR": {4, 5}, "TN": {5, 5},
	"NC": {6, 5}, "SC": {7, 5}, "DC": {8, 5},
	"OK": {3, 6}, "LA": {4, 6}, "MS": {5, 6}, "AL": {6, 6}, "GA": {7, 6},
	"HI": {0, 7}, "TX": {3, 7}, "FL": {8, 7},
}

const (
	tileSize   = 56
	tileGap    = 4
	mapLeft    = 10
	mapTop     = 50
	legendH    = 70
	gridCols   = 11
	gridRows   = 8
	noDataFill = "fill:rgb(221,221,221)"
)

// StateMapSize returns the dimensions StateMap draws at.
func StateMapSize() (w, h int) {
	w = 2*mapLeft + gridCols*tileSize
	h = mapTop + gridRows*tileSize + legendH
	return
}

// StateMap draws the geographic drill-down as an SVG grid cartogram:
// one tile per state, colored by the state's mean metric on the
// blue-orange ramp. States with no data for the selection are gray.
// codes supplies the location-name-to-postal-code mapping; states
// without a known tile position are skipped.
func StateMap(w io.Writer, means []riskindex.StateMean, codes []gbd.StateCode, title string) {
	codeOf := make(map[string]string)
	for _, sc := range codes {
		codeOf[sc.State] = sc.Code
	}

	// Color domain from the observed means.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, m := range means {
		if m.NoData() {
			continue
		}
		lo = math.Min(lo, m.Value)
		hi = math.Max(hi, m.Value)
	}
	hasData := lo <= hi
	if lo == hi {
		// Degenerate domain; widen it so Map is defined.
		hi = lo + 1
	}
	ls := scale.Linear{Min: lo, Max: hi}

	width, height := StateMapSize()
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Text(mapLeft, 30, title, "font-family:sans-serif;font-size:16px")

	for _, m := range means {
		code, ok := codeOf[m.State]
		if !ok {
			continue
		}
		pos, ok := stateTiles[code]
		if !ok {
			continue
		}
		x := mapLeft + pos.Col*tileSize
		y := mapTop + pos.Row*tileSize

		fill, label := noDataFill, m.State+": no data"
		if !m.NoData() {
			fill = cssFill(BlueOrange(ls.Map(m.Value)))
			label = fmt.Sprintf("%s: %.2f", m.State, m.Value)
		}

		canvas.Group()
		canvas.Title(label)
		canvas.Rect(x, y, tileSize-tileGap, tileSize-tileGap, fill, "stroke:white")
		canvas.Text(x+(tileSize-tileGap)/2, y+tileSize/2+4, code,
			"text-anchor:middle;font-family:sans-serif;font-size:12px")
		canvas.Gend()
	}

	if hasData {
		drawLegend(canvas, ls, mapLeft, mapTop+gridRows*tileSize+20)
	}
	canvas.End()
}

// NoDataSVG writes a placeholder panel for a view whose selection
// matched no records, so an empty drill-down reads as "no data"
// rather than as a broken output.
func NoDataSVG(w io.Writer, msg string) {
	const width, height = 400, 60
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, noDataFill)
	canvas.Text(width/2, height/2+5, msg,
		"text-anchor:middle;font-family:sans-serif;font-size:14px")
	canvas.End()
}

// drawLegend draws the color ramp with tick labels under the map.
func drawLegend(canvas *svg.SVG, ls scale.Linear, x, y int) {
	const legendW, legendBarH, steps = 300, 12, 60
	for i := 0; i < steps; i++ {
		t := float64(i) / (steps - 1)
		canvas.Rect(x+i*legendW/steps, y, legendW/steps+1, legendBarH, cssFill(BlueOrange(t)))
	}
	major, _ := ls.Ticks(scale.TickOptions{Max: 5})
	for _, tick := range major {
		tx := x + int(ls.Map(tick)*legendW)
		canvas.Line(tx, y, tx, y+legendBarH+4, "stroke:black")
		canvas.Text(tx, y+legendBarH+18, fmt.Sprintf("%.6g", tick),
			"text-anchor:middle;font-family:sans-serif;font-size:11px")
	}
}
