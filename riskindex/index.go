// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package riskindex answers aggregation queries over a loaded GBD
// risks extract.
//
// An Index is built once from the full record set and is immutable
// afterwards; every query is a pure read. This is the layer behind
// all of the dashboard views: a heatmap cell is a Mean query over one
// (risk factor, cancer) pair, a trend line is a Mean query per year,
// and a map tile is a Mean query per state.
package riskindex

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
)

// Index holds a GBD record set organized for filtered aggregation.
type Index struct {
	records []gbd.Record

	// byPair groups record indices by (risk factor, cancer), the
	// grain of the heatmap. byPlace groups them by (state, year),
	// the grain of the drill-down views.
	byPair  map[pairKey][]int
	byPlace map[placeKey][]int

	riskFactors, cancers, states []string
	minYear, maxYear             int
}

type pairKey struct {
	risk, cancer string
}

type placeKey struct {
	state string
	year  int
}

type fullKey struct {
	risk, cancer, state string
	year                int
}

// New builds an Index over records. It fails on an empty record set,
// on a duplicate (risk factor, cancer, state, year) observation, and
// on a negative metric value; all three mean the extract was exported
// or filtered incorrectly and every aggregate would be suspect.
func New(records []gbd.Record) (*Index, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records")
	}

	ix := &Index{
		records: records,
		byPair:  make(map[pairKey][]int),
		byPlace: make(map[placeKey][]int),
		minYear: records[0].Year,
		maxYear: records[0].Year,
	}
	seen := make(map[fullKey]bool, len(records))
	riskSet, cancerSet, stateSet := make(map[string]bool), make(map[string]bool), make(map[string]bool)
	for i, r := range records {
		key := fullKey{r.RiskFactor, r.Cancer, r.State, r.Year}
		if seen[key] {
			return nil, fmt.Errorf("duplicate observation for %s/%s in %s, %d", r.RiskFactor, r.Cancer, r.State, r.Year)
		}
		seen[key] = true
		if r.Value < 0 {
			return nil, fmt.Errorf("negative value %v for %s/%s in %s, %d", r.Value, r.RiskFactor, r.Cancer, r.State, r.Year)
		}

		ix.byPair[pairKey{r.RiskFactor, r.Cancer}] = append(ix.byPair[pairKey{r.RiskFactor, r.Cancer}], i)
		ix.byPlace[placeKey{r.State, r.Year}] = append(ix.byPlace[placeKey{r.State, r.Year}], i)
		riskSet[r.RiskFactor] = true
		cancerSet[r.Cancer] = true
		stateSet[r.State] = true
		if r.Year < ix.minYear {
			ix.minYear = r.Year
		}
		if r.Year > ix.maxYear {
			ix.maxYear = r.Year
		}
	}
	ix.riskFactors = sortedKeys(riskSet)
	ix.cancers = sortedKeys(cancerSet)
	ix.states = sortedKeys(stateSet)
	return ix, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Filter selects a subset of the indexed records. The zero Filter
// selects everything. A nil or empty slice leaves that dimension
// unconstrained; a zero YearMin or YearMax leaves that end of the
// year range open.
type Filter struct {
	RiskFactors []string
	Cancers     []string
	States      []string

	// YearMin and YearMax bound the year, inclusive. Set both to
	// the same year to select a single year.
	YearMin, YearMax int
}

func (f Filter) match(r gbd.Record) bool {
	if len(f.RiskFactors) != 0 && !contains(f.RiskFactors, r.RiskFactor) {
		return false
	}
	if len(f.Cancers) != 0 && !contains(f.Cancers, r.Cancer) {
		return false
	}
	if len(f.States) != 0 && !contains(f.States, r.State) {
		return false
	}
	if f.YearMin != 0 && r.Year < f.YearMin {
		return false
	}
	if f.YearMax != 0 && r.Year > f.YearMax {
		return false
	}
	return true
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Agg selects the aggregation a Query applies to the matched values.
type Agg int

const (
	Mean Agg = iota
	Sum
	Count
)

func (a Agg) String() string {
	switch a {
	case Mean:
		return "mean"
	case Sum:
		return "sum"
	case Count:
		return "count"
	}
	return fmt.Sprintf("Agg(%d)", int(a))
}

// Result is the outcome of one aggregation query. N is the number of
// records the query matched. If N is zero there was no data for the
// filter: Value is NaN, never a zero that could be mistaken for an
// observed value.
type Result struct {
	Value float64
	N     int
}

// NoData reports whether the query matched no records.
func (r Result) NoData() bool {
	return r.N == 0
}

// Query aggregates the metric over every record matching f. A filter
// that matches nothing yields a no-data Result, not an error.
func (ix *Index) Query(f Filter, agg Agg) Result {
	var vals []float64
	for _, i := range ix.candidates(f) {
		if r := ix.records[i]; f.match(r) {
			vals = append(vals, r.Value)
		}
	}
	if len(vals) == 0 {
		return Result{Value: math.NaN()}
	}
	res := Result{N: len(vals)}
	switch agg {
	case Mean:
		res.Value = stats.Mean(vals)
	case Sum:
		for _, v := range vals {
			res.Value += v
		}
	case Count:
		res.Value = float64(len(vals))
	default:
		panic(fmt.Sprintf("unknown aggregate %v", agg))
	}
	return res
}

// candidates returns the indices of the records worth testing
// against f, using whichever grouping the filter pins down. The
// fallback is a full scan, which is fine at this dataset's scale.
func (ix *Index) candidates(f Filter) []int {
	if len(f.RiskFactors) != 0 && len(f.Cancers) != 0 {
		var idxs []int
		for _, risk := range f.RiskFactors {
			for _, cancer := range f.Cancers {
				idxs = append(idxs, ix.byPair[pairKey{risk, cancer}]...)
			}
		}
		return idxs
	}
	if len(f.States) != 0 && f.YearMin != 0 && f.YearMin == f.YearMax {
		var idxs []int
		for _, state := range f.States {
			idxs = append(idxs, ix.byPlace[placeKey{state, f.YearMin}]...)
		}
		return idxs
	}
	all := make([]int, len(ix.records))
	for i := range all {
		all[i] = i
	}
	return all
}

// RiskFactors returns every risk factor in the index, sorted.
func (ix *Index) RiskFactors() []string {
	return ix.riskFactors
}

// Cancers returns every cancer type in the index, sorted.
func (ix *Index) Cancers() []string {
	return ix.cancers
}

// States returns every state in the index, sorted.
func (ix *Index) States() []string {
	return ix.states
}

// Years returns the inclusive year range covered by the index.
func (ix *Index) Years() (min, max int) {
	return ix.minYear, ix.maxYear
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// DefaultCancer returns the cancer type a drill-down view should
// start on when the user has not picked one: the second in sorted
// order, since the first is usually the "All cancers" roll-up.
func (ix *Index) DefaultCancer() string {
	if len(ix.cancers) > 1 {
		return ix.cancers[1]
	}
	return ix.cancers[0]
}
