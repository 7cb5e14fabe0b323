// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riskheat plots cancer DALY rates as a risk factor by cancer
// type heatmap.
//
// riskheat reads the GBD risks extract from the dataset directory
// (-data, $GBD_DATA_DIR, or ./data), aggregates the rate-per-100k
// values for the selected risk factors and time period, and writes an
// SVG heatmap of the mean rate for every risk factor and cancer type
// pair. Pairs the extract has no rows for are left blank.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/ssurapaneni34/the-plot-thickens/internal/cliutil"
	"github.com/ssurapaneni34/the-plot-thickens/internal/render"
	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

func main() {
	log.SetPrefix("riskheat: ")
	log.SetFlags(0)

	cliutil.LoadEnv()
	var (
		flagData     = flag.String("data", "", "read dataset from `dir` (default: $GBD_DATA_DIR or ./data)")
		flagRisks    = flag.String("risks", "", "plot comma-separated `risks` (default: Tobacco, High alcohol use, Air pollution)")
		flagCategory = flag.String("category", "", "add all risks in `category` (Environmental, Behavioral, Metabolic, or all)")
		flagYear     = flag.Int("year", 0, "restrict to `year`")
		flagYears    = flag.String("years", "", "restrict to inclusive year `range` as LO-HI")
		flagOut      = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable    = flag.Bool("table", false, "output a table instead of a plot")
		flagOpen     = flag.Bool("open", false, "open the output in $SVGVIEWER (requires -o)")
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
	if *flagOpen && *flagOut == "" {
		log.Fatal("-open requires -o")
	}

	risks, err := cliutil.ParseRisks(*flagRisks, *flagCategory)
	if err != nil {
		log.Fatal(err)
	}
	yearLo, yearHi, err := cliutil.ParseYears(*flagYear, *flagYears)
	if err != nil {
		log.Fatal(err)
	}

	records, _, err := cliutil.LoadRisks(cliutil.DataDir(*flagData))
	if err != nil {
		log.Fatal(err)
	}
	idx, err := riskindex.New(records)
	if err != nil {
		log.Fatal(err)
	}

	cells := idx.Cells(riskindex.Filter{
		RiskFactors: risks,
		YearMin:     yearLo,
		YearMax:     yearHi,
	})

	f, err := cliutil.CreateOutput(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if *flagTable {
		table.Fprint(f, render.CellsTable(cells))
		return
	}

	title := fmt.Sprintf("Cancer DALY rate per 100k by risk factor, %s", cliutil.TimeLabel(yearLo, yearHi))
	w, h := render.HeatmapSize(cells)
	if err := render.Heatmap(cells, title).WriteSVG(f, w, h); err != nil {
		log.Fatal(err)
	}

	if *flagOpen {
		if err := cliutil.OpenViewer(*flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
