// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riskmap draws the per-state mean DALY rate for a selection
// of risk factors as a US grid cartogram.
//
// riskmap reads both the GBD risks extract and the state code table
// from the dataset directory (-data, $GBD_DATA_DIR, or ./data).
// States the selection has no rows for are drawn gray.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
	"github.com/ssurapaneni34/the-plot-thickens/internal/cliutil"
	"github.com/ssurapaneni34/the-plot-thickens/internal/render"
	"github.com/ssurapaneni34/the-plot-thickens/riskindex"
)

func main() {
	log.SetPrefix("riskmap: ")
	log.SetFlags(0)

	cliutil.LoadEnv()
	var (
		flagData     = flag.String("data", "", "read dataset from `dir` (default: $GBD_DATA_DIR or ./data)")
		flagCancer   = flag.String("cancer", "", "restrict to `cancer` type (default: all cancer types)")
		flagRisks    = flag.String("risks", "", "map comma-separated `risks` (default: Tobacco, High alcohol use, Air pollution)")
		flagCategory = flag.String("category", "", "add all risks in `category` (Environmental, Behavioral, Metabolic, or all)")
		flagYear     = flag.Int("year", 0, "restrict to `year`")
		flagYears    = flag.String("years", "", "restrict to inclusive year `range` as LO-HI")
		flagOut      = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable    = flag.Bool("table", false, "output a table instead of a map")
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

	dir := cliutil.DataDir(*flagData)
	records, _, err := cliutil.LoadRisks(dir)
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

	filter := riskindex.Filter{
		RiskFactors: risks,
		YearMin:     yearLo,
		YearMax:     yearHi,
	}
	if *flagCancer != "" {
		filter.Cancers = []string{*flagCancer}
	}
	means := idx.StateMeans(filter)

	f, err := cliutil.CreateOutput(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if *flagTable {
		table.Fprint(f, render.StatesTable(means))
		return
	}

	title := fmt.Sprintf("Mean cancer DALY rate per 100k by state, %s", cliutil.TimeLabel(yearLo, yearHi))
	render.StateMap(f, means, codes, title)

	if *flagOpen {
		if err := cliutil.OpenViewer(*flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
