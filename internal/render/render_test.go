// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

func result(v float64, n int) riskindex.Result {
	return riskindex.Result{Value: v, N: n}
}

func noData() riskindex.Result {
	return riskindex.Result{Value: math.NaN()}
}

func TestCellsTable(t *testing.T) {
	cells := []riskindex.Cell{
		{RiskFactor: "Tobacco", Cancer: "Lung cancer", Result: result(13, 2)},
		{RiskFactor: "Tobacco", Cancer: "Liver cancer", Result: noData()},
	}
	tab := CellsTable(cells)
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}
	for _, col := range []string{"risk factor", "cancer type", "mean val"} {
		if tab.Column(col) == nil {
			t.Errorf("missing column %q", col)
		}
	}
	vals := tab.MustColumn("mean val").([]float64)
	if vals[0] != 13 {
		t.Errorf("mean val[0] = %v, want 13", vals[0])
	}
	if !math.IsNaN(vals[1]) {
		t.Errorf("mean val[1] = %v, want NaN", vals[1])
	}
}

func TestHeatmapSVG(t *testing.T) {
	cells := []riskindex.Cell{
		{RiskFactor: "Tobacco", Cancer: "Lung cancer", Result: result(13, 2)},
		{RiskFactor: "Tobacco", Cancer: "Liver cancer", Result: noData()},
		{RiskFactor: "High alcohol use", Cancer: "Lung cancer", Result: result(2, 1)},
		{RiskFactor: "High alcohol use", Cancer: "Liver cancer", Result: result(8, 3)},
	}
	plot := Heatmap(cells, "rates")
	var buf bytes.Buffer
	w, h := HeatmapSize(cells)
	if err := plot.WriteSVG(&buf, w, h); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	svg := buf.String()
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("output is not SVG: %.60q...", svg)
	}
	for _, label := range []string{"Tobacco", "Lung cancer"} {
		if !strings.Contains(svg, label) {
			t.Errorf("SVG missing label %q", label)
		}
	}
}

func TestTrendTable(t *testing.T) {
	series := []riskindex.TrendPoint{
		{Year: 2020, RiskFactor: "Tobacco", Result: result(16, 2)},
		{Year: 2021, RiskFactor: "Tobacco", Result: result(14, 1)},
	}
	tab := TrendTable(series)
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}
	years := tab.MustColumn("year").([]int)
	if years[0] != 2020 || years[1] != 2021 {
		t.Errorf("years = %v, want [2020 2021]", years)
	}
}

func TestTrendPlotSVG(t *testing.T) {
	series := []riskindex.TrendPoint{
		{Year: 2020, RiskFactor: "Tobacco", Result: result(16, 2)},
		{Year: 2021, RiskFactor: "Tobacco", Result: result(14, 1)},
		{Year: 2020, RiskFactor: "Air pollution", Result: result(3, 1)},
		{Year: 2021, RiskFactor: "Air pollution", Result: result(4, 1)},
	}
	plot := TrendPlot(series, "Lung cancer")
	var buf bytes.Buffer
	if err := plot.WriteSVG(&buf, 800, 400); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("output is not SVG")
	}
}

func TestBlueOrange(t *testing.T) {
	tests := []struct {
		t       float64
		r, g, b uint8
	}{
		{0, 0x21, 0x66, 0xac},
		{0.5, 0xf7, 0xf7, 0xf7},
		{1, 0xb3, 0x58, 0x06},
		{-1, 0x21, 0x66, 0xac}, // clamped
		{2, 0xb3, 0x58, 0x06},  // clamped
	}
	for _, test := range tests {
		c := BlueOrange(test.t)
		if c.R != test.r || c.G != test.g || c.B != test.b {
			t.Errorf("BlueOrange(%v) = #%02x%02x%02x, want #%02x%02x%02x",
				test.t, c.R, c.G, c.B, test.r, test.g, test.b)
		}
	}
}

func TestNoDataSVG(t *testing.T) {
	var buf bytes.Buffer
	NoDataSVG(&buf, "no data for Liver cancer")
	svg := buf.String()
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("output is not SVG")
	}
	if !strings.Contains(svg, "no data for Liver cancer") {
		t.Errorf("SVG missing the no-data message")
	}
}

func TestStateMap(t *testing.T) {
	means := []riskindex.StateMean{
		{State: "California", Result: result(5, 2)},
		{State: "Texas", Result: result(9, 1)},
		{State: "Vermont", Result: noData()},
	}
	codes := []gbd.StateCode{
		{State: "California", Code: "CA", MapID: 6},
		{State: "Texas", Code: "TX", MapID: 48},
		{State: "Vermont", Code: "VT", MapID: 50},
	}
	var buf bytes.Buffer
	StateMap(&buf, means, codes, "Tobacco, all years")
	svg := buf.String()
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("output is not SVG")
	}
	for _, want := range []string{">CA<", ">TX<", ">VT<", "Tobacco, all years"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.Contains(svg, "Vermont: no data") {
		t.Errorf("SVG missing no-data tooltip for Vermont")
	}
	if !strings.Contains(svg, "California: 5.00") {
		t.Errorf("SVG missing value tooltip for California")
	}
}
