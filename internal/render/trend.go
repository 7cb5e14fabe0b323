// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

// TrendTable builds a gg table from a temporal drill-down series
// with columns "year", "risk factor", and "mean val".
func TrendTable(series []riskindex.TrendPoint) *table.Table {
	years := make([]int, len(series))
	risks := make([]string, len(series))
	vals := make([]float64, len(series))
	for i, p := range series {
		years[i] = p.Year
		risks[i] = p.RiskFactor
		vals[i] = p.Value
	}
	return new(table.Builder).
		Add("year", years).
		Add("risk factor", risks).
		Add("mean val", vals).
		Done()
}

// TrendPlot plots one line per risk factor: the mean metric over
// time for the drilled-into cancer type.
func TrendPlot(series []riskindex.TrendPoint, title string) *gg.Plot {
	plot := gg.NewPlot(TrendTable(series))
	plot.Add(gg.Title(title))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerLines{
		X:     "year",
		Y:     "mean val",
		Color: "risk factor",
	})
	plot.Add(gg.LayerPoints{
		X:     "year",
		Y:     "mean val",
		Color: "risk factor",
	})
	return plot
}
