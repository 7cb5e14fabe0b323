// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbd reads state-level cancer risk extracts from the Global
// Burden of Disease study (GBD 2023) results tool.
//
// The extract is a comma-separated file with a header row. Columns
// are located by name, so column order does not matter. The columns
// this package understands are:
//
//	rei_name       risk factor ("rei" is GBD-speak for risk/etiology/impairment)
//	cause_name     cancer type
//	location_name  US state or district
//	year           calendar year
//	val            metric value (DALYs rate per 100,000)
//	measure_name   optional; the GBD measure the row reports
//
// Exports from the results tool routinely have header rows repeated
// in the middle of the data (one per downloaded chunk); those rows
// are skipped.
package gbd

// Record is one observation from the extract: the contribution of
// one risk factor to one cancer type in one state in one year.
type Record struct {
	// RiskFactor is the GBD rei_name, e.g. "Tobacco".
	RiskFactor string

	// Cancer is the GBD cause_name, e.g. "Liver cancer".
	Cancer string

	// State is the GBD location_name: a US state or district.
	State string

	// Year is the calendar year of the observation.
	Year int

	// Value is the metric value. For the extracts this toolkit is
	// built around it is the DALYs rate per 100,000 attributable
	// to RiskFactor.
	Value float64

	// Measure is the GBD measure_name, if the extract has that
	// column, e.g. "DALYs (Disability-Adjusted Life Years)" or
	// "Deaths". Otherwise it is "".
	Measure string
}

// CategoryNames lists the risk factor categories in presentation
// order.
var CategoryNames = []string{"Environmental", "Behavioral", "Metabolic"}

// Categories maps each risk factor category to the GBD risk factor
// names in it, in presentation order.
var Categories = map[string][]string{
	"Environmental": {
		"Occupational risks",
		"Unsafe water, sanitation, and handwashing",
		"Air pollution",
		"Non-optimal temperature",
		"Other environmental risks",
	},
	"Behavioral": {
		"Tobacco",
		"High alcohol use",
		"Drug use",
		"Dietary risks",
		"Unsafe sex",
		"Low physical activity",
		"Intimate partner violence",
		"Sexual violence against children and bullying",
		"Child and maternal malnutrition",
	},
	"Metabolic": {
		"High fasting plasma glucose",
		"High LDL cholesterol",
		"High systolic blood pressure",
		"High body-mass index",
		"Low bone mineral density",
		"Kidney dysfunction",
	},
}

// CategoryOf returns the category of the named risk factor, or "" if
// the risk factor is not in the taxonomy.
func CategoryOf(risk string) string {
	for _, cat := range CategoryNames {
		for _, r := range Categories[cat] {
			if r == risk {
				return cat
			}
		}
	}
	return ""
}

// AllRiskFactors returns every risk factor in the taxonomy, in
// category order.
func AllRiskFactors() []string {
	var all []string
	for _, cat := range CategoryNames {
		all = append(all, Categories[cat]...)
	}
	return all
}

// WithoutMeasure returns the records in recs whose Measure differs
// from name. The dashboard views use it to drop the "Deaths" rows
// that ride along in combined extracts.
func WithoutMeasure(recs []Record, name string) []Record {
	out := recs[:0:0]
	for _, r := range recs {
		if r.Measure != name {
			out = append(out, r)
		}
	}
	return out
}
