// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbd

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []Record
	}{
		{
			"basic",
			`rei_name,cause_name,location_name,year,val
Tobacco,Lung cancer,California,2020,12.5
High alcohol use,Liver cancer,Texas,2015,3.25`,
			[]Record{
				{"Tobacco", "Lung cancer", "California", 2020, 12.5, ""},
				{"High alcohol use", "Liver cancer", "Texas", 2015, 3.25, ""},
			},
		},

		// Column order must not matter.
		{
			"reordered columns",
			`val,year,location_name,cause_name,rei_name
7,1990,Ohio,Larynx cancer,Tobacco`,
			[]Record{
				{"Tobacco", "Larynx cancer", "Ohio", 1990, 7, ""},
			},
		},

		// Results-tool exports repeat the header mid-file.
		{
			"embedded header rows",
			`rei_name,cause_name,location_name,year,val
Tobacco,Lung cancer,California,2020,12.5
rei_name,cause_name,location_name,year,val
Tobacco,Lung cancer,California,2021,14.5`,
			[]Record{
				{"Tobacco", "Lung cancer", "California", 2020, 12.5, ""},
				{"Tobacco", "Lung cancer", "California", 2021, 14.5, ""},
			},
		},

		{
			"measure column",
			`measure_name,rei_name,cause_name,location_name,year,val
Deaths,Tobacco,Lung cancer,California,2020,12.5`,
			[]Record{
				{"Tobacco", "Lung cancer", "California", 2020, 12.5, "Deaths"},
			},
		},

		// Extra columns are ignored.
		{
			"extra columns",
			`rei_name,cause_name,location_name,year,val,upper,lower
Tobacco,Lung cancer,California,2020,12.5,14,11`,
			[]Record{
				{"Tobacco", "Lung cancer", "California", 2020, 12.5, ""},
			},
		},

		{
			"no data rows",
			`rei_name,cause_name,location_name,year,val`,
			nil,
		},
	} {
		got, err := ParseCSV(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: want %v; got %v", test.name, test.want, got)
		}
	}
}

func TestParseCSVErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing column", "rei_name,cause_name,year,val\n"},
		{
			"bad year",
			"rei_name,cause_name,location_name,year,val\nTobacco,Lung cancer,California,199O,12.5",
		},
		{
			"bad val",
			"rei_name,cause_name,location_name,year,val\nTobacco,Lung cancer,California,1990,n/a",
		},
		{
			"short row",
			"rei_name,cause_name,location_name,year,val\nTobacco,Lung cancer",
		},
	} {
		if _, err := ParseCSV(strings.NewReader(test.input)); err == nil {
			t.Errorf("%s: want error; got none", test.name)
		}
	}
}

func TestWithoutMeasure(t *testing.T) {
	recs := []Record{
		{"Tobacco", "Lung cancer", "California", 2020, 12.5, "DALYs (Disability-Adjusted Life Years)"},
		{"Tobacco", "Lung cancer", "California", 2020, 1.5, "Deaths"},
	}
	got := WithoutMeasure(recs, "Deaths")
	if len(got) != 1 || got[0].Measure == "Deaths" {
		t.Errorf("want only non-Deaths records; got %v", got)
	}
	// The input must not be clobbered.
	if len(recs) != 2 {
		t.Errorf("input records modified: %v", recs)
	}
}

func TestCategories(t *testing.T) {
	if got := CategoryOf("Tobacco"); got != "Behavioral" {
		t.Errorf(`CategoryOf("Tobacco") = %q; want "Behavioral"`, got)
	}
	if got := CategoryOf("Air pollution"); got != "Environmental" {
		t.Errorf(`CategoryOf("Air pollution") = %q; want "Environmental"`, got)
	}
	if got := CategoryOf("Jaywalking"); got != "" {
		t.Errorf(`CategoryOf("Jaywalking") = %q; want ""`, got)
	}

	all := AllRiskFactors()
	seen := make(map[string]bool)
	for _, r := range all {
		if seen[r] {
			t.Errorf("duplicate risk factor %q", r)
		}
		seen[r] = true
	}
	n := 0
	for _, cat := range CategoryNames {
		n += len(Categories[cat])
	}
	if len(all) != n {
		t.Errorf("AllRiskFactors returned %d factors; want %d", len(all), n)
	}
}
