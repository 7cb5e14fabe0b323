// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbd

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ParseCSV parses a GBD risks extract from r. It returns one Record
// per data row, in file order.
//
// The header row names the columns; rei_name, cause_name,
// location_name, year, and val are required. Repeated header rows in
// the data are skipped. Any other malformed row is an error: the
// dataset is loaded once at startup, so a bad row should stop the
// load rather than silently skew every aggregate computed from it.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}
	for _, req := range []string{"rei_name", "cause_name", "location_name", "year", "val"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("missing column %q", req)
		}
	}
	measureCol, hasMeasure := cols["measure_name"]

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < len(header) {
			return nil, fmt.Errorf("line %d: %d fields, want %d", line, len(row), len(header))
		}

		// Results-tool exports repeat the header between chunks.
		if row[cols["rei_name"]] == "rei_name" {
			continue
		}

		year, err := strconv.Atoi(row[cols["year"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad year %q", line, row[cols["year"]])
		}
		val, err := strconv.ParseFloat(row[cols["val"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad val %q", line, row[cols["val"]])
		}

		rec := Record{
			RiskFactor: row[cols["rei_name"]],
			Cancer:     row[cols["cause_name"]],
			State:      row[cols["location_name"]],
			Year:       year,
			Value:      val,
		}
		if hasMeasure {
			rec.Measure = row[measureCol]
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile parses the GBD risks extract at path. It also returns a
// fingerprint of the file contents, so reports can say exactly which
// download of the dataset they were computed from.
func ReadFile(path string) ([]Record, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	hash := xxhash.New()
	records, err := ParseCSV(io.TeeReader(f, hash))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %v", path, err)
	}
	return records, hex.EncodeToString(hash.Sum(nil)), nil
}
