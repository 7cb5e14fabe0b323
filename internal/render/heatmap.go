// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns aggregation results into the dashboard's
// visual artifacts: the risk/cancer heatmap, the temporal trend
// plot, and the state map. Everything renders to SVG, so the output
// drops straight into a browser or the HTML report.
package render

import (
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

// CellsTable builds a gg table from heatmap cells with columns "risk
// factor", "cancer type", and "mean val". No-data cells carry NaN,
// which keeps them distinguishable from observed zeros in -table
// output.
func CellsTable(cells []riskindex.Cell) *table.Table {
	risks := make([]string, len(cells))
	cancers := make([]string, len(cells))
	vals := make([]float64, len(cells))
	for i, c := range cells {
		risks[i] = c.RiskFactor
		cancers[i] = c.Cancer
		vals[i] = c.Value
	}
	return new(table.Builder).
		Add("risk factor", risks).
		Add("cancer type", cancers).
		Add("mean val", vals).
		Done()
}

// Heatmap plots one tile per (risk factor, cancer type) pair, filled
// by the mean metric. No-data cells are left blank.
func Heatmap(cells []riskindex.Cell, title string) *gg.Plot {
	tab := removeNaNs(CellsTable(cells), "mean val")

	plot := gg.NewPlot(tab)
	plot.Add(gg.Title(title))
	plot.Add(gg.LayerTiles{
		X:    "risk factor",
		Y:    "cancer type",
		Fill: "mean val",
	})
	return plot
}

// HeatmapSize suggests plot dimensions for cells: wide enough for
// the risk factor labels and one band per dimension value.
func HeatmapSize(cells []riskindex.Cell) (w, h int) {
	risks, cancers := make(map[string]bool), make(map[string]bool)
	for _, c := range cells {
		risks[c.RiskFactor] = true
		cancers[c.Cancer] = true
	}
	return 220 + 90*len(risks), 120 + 30*len(cancers)
}

func removeNaNs(g table.Grouping, col string) table.Grouping {
	return table.Filter(g, func(v float64) bool {
		return !math.IsNaN(v)
	}, col)
}
