// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command risktrend plots the DALY rate of one cancer type over time,
// one line per selected risk factor.
//
// risktrend reads the GBD risks extract from the dataset directory
// (-data, $GBD_DATA_DIR, or ./data). The cancer type defaults the way
// the dashboard does when nothing is selected.
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
	log.SetPrefix("risktrend: ")
	log.SetFlags(0)

	cliutil.LoadEnv()
	var (
		flagData     = flag.String("data", "", "read dataset from `dir` (default: $GBD_DATA_DIR or ./data)")
		flagCancer   = flag.String("cancer", "", "plot `cancer` type (default: the dashboard's initial pick)")
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

	cancer := *flagCancer
	if cancer == "" {
		cancer = idx.DefaultCancer()
	}

	series := idx.TrendSeries(riskindex.Filter{
		RiskFactors: risks,
		Cancers:     []string{cancer},
		YearMin:     yearLo,
		YearMax:     yearHi,
	})

	f, err := cliutil.CreateOutput(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if *flagTable {
		table.Fprint(f, render.TrendTable(series))
		return
	}

	// An empty selection still renders, as an explicit marker.
	if len(series) == 0 {
		render.NoDataSVG(f, fmt.Sprintf("no data for %s", cancer))
	} else {
		title := fmt.Sprintf("%s DALY rate per 100k over time", cancer)
		if err := render.TrendPlot(series, title).WriteSVG(f, 850, 450); err != nil {
			log.Fatal(err)
		}
	}

	if *flagOpen {
		if err := cliutil.OpenViewer(*flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
