// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riskreport writes a self-contained HTML report of cancer
// DALY rates by risk factor: the risk-by-cancer heatmap, a per-year
// trend for one cancer type, the per-state map, and the highest-rate
// risk and cancer pairs.
//
// riskreport reads the GBD risks extract and the state code table
// from the dataset directory (-data, $GBD_DATA_DIR, or ./data). The
// plots are inlined as SVG, so the report needs nothing else to view.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"log"
	"os"
	"sort"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
	"github.com/ssurapaneni34/the-plot-thickens/internal/cliutil"
	"github.com/ssurapaneni34/the-plot-thickens/internal/render"
	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

// report is the data behind the HTML template.
type report struct {
	TimeLabel   string
	Fingerprint string

	NumRecords int
	NumRisks   int
	NumCancers int
	NumStates  int
	YearLo     int
	YearHi     int

	Cancer string

	HeatmapSVG template.HTML
	TrendSVG   template.HTML
	MapSVG     template.HTML

	TopPairs []riskindex.Cell
}

func main() {
	log.SetPrefix("riskreport: ")
	log.SetFlags(0)

	cliutil.LoadEnv()
	var (
		flagData     = flag.String("data", "", "read dataset from `dir` (default: $GBD_DATA_DIR or ./data)")
		flagCancer   = flag.String("cancer", "", "trend `cancer` type (default: the dashboard's initial pick)")
		flagRisks    = flag.String("risks", "", "report comma-separated `risks` (default: Tobacco, High alcohol use, Air pollution)")
		flagCategory = flag.String("category", "", "add all risks in `category` (Environmental, Behavioral, Metabolic, or all)")
		flagYear     = flag.Int("year", 0, "restrict to `year`")
		flagYears    = flag.String("years", "", "restrict to inclusive year `range` as LO-HI")
		flagTop      = flag.Int("top", 10, "list the `n` highest-rate pairs")
		flagOut      = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	risks, err := cliutil.ParseRisks(*flagRisks, *flagCategory)
	if err != nil {
		log.Fatal(err)
	}
	yearLo, yearHi, err := cliutil.ParseYears(*flagYear, *flagYears)
	if err != nil {
		log.Fatal(err)
	}

	dir := cliutil.DataDir(*flagData)
	records, fingerprint, err := cliutil.LoadRisks(dir)
	if err != nil {
		log.Fatal(err)
	}
	codes, err := gbd.ReadStateCodes(cliutil.StateCodesPath(dir))
	if err != nil {
		log.Fatal(err)
	}
	idx, err := riskindex.New(records)
	if err != nil {
		log.Fatal(err)
	}

	cancer := *flagCancer
	if cancer == "" {
		cancer = idx.DefaultCancer()
	}

	r, err := buildReport(idx, codes, risks, cancer, yearLo, yearHi, *flagTop)
	if err != nil {
		log.Fatal(err)
	}
	r.Fingerprint = fingerprint

	f, err := cliutil.CreateOutput(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := printHTMLReport(f, r); err != nil {
		log.Fatal(err)
	}
}

func buildReport(idx *riskindex.Index, codes []gbd.StateCode, risks []string, cancer string, yearLo, yearHi, top int) (*report, error) {
	filter := riskindex.Filter{
		RiskFactors: risks,
		YearMin:     yearLo,
		YearMax:     yearHi,
	}

	minYear, maxYear := idx.Years()
	r := &report{
		TimeLabel:  cliutil.TimeLabel(yearLo, yearHi),
		NumRecords: idx.Len(),
		NumRisks:   len(idx.RiskFactors()),
		NumCancers: len(idx.Cancers()),
		NumStates:  len(idx.States()),
		YearLo:     minYear,
		YearHi:     maxYear,
		Cancer:     cancer,
	}

	cells := idx.Cells(filter)
	var buf bytes.Buffer
	w, h := render.HeatmapSize(cells)
	title := fmt.Sprintf("Cancer DALY rate per 100k by risk factor, %s", r.TimeLabel)
	if err := render.Heatmap(cells, title).WriteSVG(&buf, w, h); err != nil {
		return nil, err
	}
	r.HeatmapSVG = template.HTML(buf.String())

	trendFilter := filter
	trendFilter.Cancers = []string{cancer}
	series := idx.TrendSeries(trendFilter)
	buf.Reset()
	if len(series) == 0 {
		// The rest of the report is still worth having; mark the
		// empty section instead of aborting.
		render.NoDataSVG(&buf, fmt.Sprintf("no data for %s", cancer))
	} else {
		title = fmt.Sprintf("%s DALY rate per 100k over time", cancer)
		if err := render.TrendPlot(series, title).WriteSVG(&buf, 850, 450); err != nil {
			return nil, err
		}
	}
	r.TrendSVG = template.HTML(buf.String())

	buf.Reset()
	title = fmt.Sprintf("Mean cancer DALY rate per 100k by state, %s", r.TimeLabel)
	render.StateMap(&buf, idx.StateMeans(filter), codes, title)
	r.MapSVG = template.HTML(buf.String())

	r.TopPairs = topPairs(cells, top)
	return r, nil
}

// topPairs returns the n highest-mean cells, ties broken by name so
// the report is stable.
func topPairs(cells []riskindex.Cell, n int) []riskindex.Cell {
	var pairs []riskindex.Cell
	for _, c := range cells {
		if !c.NoData() {
			pairs = append(pairs, c)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		if pairs[i].RiskFactor != pairs[j].RiskFactor {
			return pairs[i].RiskFactor < pairs[j].RiskFactor
		}
		return pairs[i].Cancer < pairs[j].Cancer
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
