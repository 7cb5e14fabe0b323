// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliutil carries the plumbing shared by the dashboard
// commands: dataset location, the risk factor and time period
// selection flags, and output handling.
package cliutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kballard/go-shellquote"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
)

// DefaultRisks is the risk factor selection the commands start from
// when no -risks or -category flag is given.
var DefaultRisks = []string{"Tobacco", "High alcohol use", "Air pollution"}

// LoadEnv loads a .env file from the current directory, if there is
// one. Missing files are fine; the environment alone is enough.
func LoadEnv() {
	godotenv.Load()
}

// DataDir resolves the dataset directory: the -data flag value if
// set, then $GBD_DATA_DIR, then "data".
func DataDir(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if dir := os.Getenv("GBD_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// RisksPath and StateCodesPath name the files this toolkit expects
// inside the dataset directory.
func RisksPath(dir string) string {
	return filepath.Join(dir, "RateDALY.csv")
}

func StateCodesPath(dir string) string {
	return filepath.Join(dir, "stateCodes.csv")
}

// LoadRisks reads the risks extract under dir, drops the Deaths rows
// that combined extracts carry, and returns the records plus the
// file fingerprint.
func LoadRisks(dir string) ([]gbd.Record, string, error) {
	records, fingerprint, err := gbd.ReadFile(RisksPath(dir))
	if err != nil {
		return nil, "", err
	}
	return gbd.WithoutMeasure(records, "Deaths"), fingerprint, nil
}

// ParseRisks resolves the -risks and -category flags to a risk
// factor list. risks is a comma-separated list of risk factor names;
// category is a category name from gbd.CategoryNames, or "all", and
// its factors are appended to the explicit list. If both are empty
// the default selection is returned.
func ParseRisks(risks, category string) ([]string, error) {
	var out []string
	if risks != "" {
		for _, r := range strings.Split(risks, ",") {
			r = strings.TrimSpace(r)
			if r == "" {
				continue
			}
			out = append(out, r)
		}
	}
	switch {
	case category == "":
	case category == "all":
		out = append(out, gbd.AllRiskFactors()...)
	default:
		factors, ok := gbd.Categories[category]
		if !ok {
			return nil, fmt.Errorf("unknown category %q (want %s, or all)", category, strings.Join(gbd.CategoryNames, ", "))
		}
		out = append(out, factors...)
	}
	if out == nil {
		return append([]string{}, DefaultRisks...), nil
	}
	return dedup(out), nil
}

func dedup(xs []string) []string {
	seen := make(map[string]bool)
	out := xs[:0]
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// ParseYears resolves the -year and -years flags to an inclusive
// year range. year selects a single year; years is "LO-HI". At most
// one may be given; if neither is, the range is unbounded (0, 0).
func ParseYears(year int, years string) (lo, hi int, err error) {
	if year != 0 && years != "" {
		return 0, 0, fmt.Errorf("-year and -years are mutually exclusive")
	}
	if year != 0 {
		return year, year, nil
	}
	if years == "" {
		return 0, 0, nil
	}
	parts := strings.SplitN(years, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad year range %q (want LO-HI)", years)
	}
	lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err == nil {
		hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if err != nil {
		return 0, 0, fmt.Errorf("bad year range %q (want LO-HI)", years)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("bad year range %q: %d > %d", years, lo, hi)
	}
	return lo, hi, nil
}

// TimeLabel renders a year range the way the dashboard titles it.
func TimeLabel(lo, hi int) string {
	switch {
	case lo == 0 && hi == 0:
		return "all years"
	case lo == hi:
		return fmt.Sprintf("year %d", lo)
	default:
		return fmt.Sprintf("years %d-%d", lo, hi)
	}
}

// CreateOutput opens the -o target, or stdout if out is empty.
func CreateOutput(out string) (*os.File, error) {
	if out == "" {
		return os.Stdout, nil
	}
	return os.Create(out)
}

// OpenViewer launches the viewer named by $SVGVIEWER on path. The
// variable holds a command line, so "firefox --new-window" works.
func OpenViewer(path string) error {
	viewer := os.Getenv("SVGVIEWER")
	if viewer == "" {
		return fmt.Errorf("SVGVIEWER is not set")
	}
	args, err := shellquote.Split(viewer)
	if err != nil {
		return fmt.Errorf("bad SVGVIEWER %q: %v", viewer, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("bad SVGVIEWER %q: no command", viewer)
	}
	args = append(args, path)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	return cmd.Start()
}
