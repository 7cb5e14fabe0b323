// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riskindex

// Cell is one heatmap cell: the mean metric for one (risk factor,
// cancer type) pair over whatever states and years the filter
// selected. A pair with no matching records carries a no-data Result.
type Cell struct {
	RiskFactor string
	Cancer     string
	Result
}

// Cells computes the heatmap grid for f: one Cell for every
// combination of the filtered risk factors and cancer types. The
// grid is complete, so renderers can distinguish "no data" from
// "low value". Cells are ordered cancer-major to match the heatmap's
// row-major layout.
func (ix *Index) Cells(f Filter) []Cell {
	risks := f.RiskFactors
	if len(risks) == 0 {
		risks = ix.riskFactors
	}
	cancers := f.Cancers
	if len(cancers) == 0 {
		cancers = ix.cancers
	}

	var cells []Cell
	for _, cancer := range cancers {
		for _, risk := range risks {
			cf := f
			cf.RiskFactors = []string{risk}
			cf.Cancers = []string{cancer}
			cells = append(cells, Cell{risk, cancer, ix.Query(cf, Mean)})
		}
	}
	return cells
}

// TrendPoint is one point of a drill-down trend line: the mean
// metric for one risk factor in one year, across the filtered
// states.
type TrendPoint struct {
	Year       int
	RiskFactor string
	Result
}

// TrendSeries computes the temporal drill-down for f: the mean
// metric per (year, risk factor), ordered by year and then by risk
// factor. Combinations with no data are omitted, leaving gaps in the
// lines where the dataset has none.
func (ix *Index) TrendSeries(f Filter) []TrendPoint {
	risks := f.RiskFactors
	if len(risks) == 0 {
		risks = ix.riskFactors
	}
	lo, hi := f.YearMin, f.YearMax
	if lo == 0 {
		lo = ix.minYear
	}
	if hi == 0 {
		hi = ix.maxYear
	}

	var series []TrendPoint
	for year := lo; year <= hi; year++ {
		for _, risk := range risks {
			yf := f
			yf.RiskFactors = []string{risk}
			yf.YearMin, yf.YearMax = year, year
			if res := ix.Query(yf, Mean); !res.NoData() {
				series = append(series, TrendPoint{year, risk, res})
			}
		}
	}
	return series
}

// StateMean is one tile of the geographic drill-down: the mean
// metric for one state across the filtered risk factors and years.
type StateMean struct {
	State string
	Result
}

// StateMeans computes the geographic drill-down for f: the mean
// metric per state, for every state in the index, sorted by state.
// States with no matching records carry a no-data Result so the map
// can show them as missing rather than zero.
func (ix *Index) StateMeans(f Filter) []StateMean {
	means := make([]StateMean, 0, len(ix.states))
	for _, state := range ix.states {
		sf := f
		sf.States = []string{state}
		means = append(means, StateMean{state, ix.Query(sf, Mean)})
	}
	return means
}
