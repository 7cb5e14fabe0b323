// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliutil

import (
	"reflect"
	"testing"

	"github.com/ssurapaneni34/the-plot-thickens/gbd"
)

func TestParseRisks(t *testing.T) {
	for _, test := range []struct {
		risks, category string
		want            []string
		wantErr         bool
	}{
		{"", "", DefaultRisks, false},
		{"Tobacco", "", []string{"Tobacco"}, false},
		{"Tobacco, Drug use", "", []string{"Tobacco", "Drug use"}, false},
		{"", "Metabolic", gbd.Categories["Metabolic"], false},
		{"", "all", gbd.AllRiskFactors(), false},
		// Category factors append to the explicit list, without
		// duplicates.
		{"Tobacco", "Behavioral", gbd.Categories["Behavioral"], false},
		{"", "Dietary", nil, true},
	} {
		got, err := ParseRisks(test.risks, test.category)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseRisks(%q, %q): want error; got none", test.risks, test.category)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRisks(%q, %q): %v", test.risks, test.category, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseRisks(%q, %q) = %v; want %v", test.risks, test.category, got, test.want)
		}
	}
}

func TestParseYears(t *testing.T) {
	for _, test := range []struct {
		year    int
		years   string
		lo, hi  int
		wantErr bool
	}{
		{0, "", 0, 0, false},
		{2010, "", 2010, 2010, false},
		{0, "1995-2015", 1995, 2015, false},
		{0, "1995 - 2015", 1995, 2015, false},
		{2010, "1995-2015", 0, 0, true},
		{0, "1995", 0, 0, true},
		{0, "2015-1995", 0, 0, true},
		{0, "now-2015", 0, 0, true},
	} {
		lo, hi, err := ParseYears(test.year, test.years)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseYears(%d, %q): want error; got none", test.year, test.years)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseYears(%d, %q): %v", test.year, test.years, err)
			continue
		}
		if lo != test.lo || hi != test.hi {
			t.Errorf("ParseYears(%d, %q) = %d, %d; want %d, %d", test.year, test.years, lo, hi, test.lo, test.hi)
		}
	}
}

func TestOpenViewerErrors(t *testing.T) {
	// An unset or blank SVGVIEWER must error, not panic.
	t.Setenv("SVGVIEWER", "")
	if err := OpenViewer("out.svg"); err == nil {
		t.Error("unset SVGVIEWER: want error; got none")
	}
	t.Setenv("SVGVIEWER", "   ")
	if err := OpenViewer("out.svg"); err == nil {
		t.Error("blank SVGVIEWER: want error; got none")
	}
}

func TestTimeLabel(t *testing.T) {
	for _, test := range []struct {
		lo, hi int
		want   string
	}{
		{0, 0, "all years"},
		{2010, 2010, "year 2010"},
		{1995, 2015, "years 1995-2015"},
	} {
		if got := TimeLabel(test.lo, test.hi); got != test.want {
			t.Errorf("TimeLabel(%d, %d) = %q; want %q", test.lo, test.hi, got, test.want)
		}
	}
}
