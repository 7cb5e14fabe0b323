// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// StateCode maps a GBD location name to its postal code and FIPS id.
// The map view needs both: the postal code to label a state tile and
// the FIPS id to match external geometry.
type StateCode struct {
	State string // location name, e.g. "California"
	Code  string // USPS code, e.g. "CA"
	MapID int    // FIPS id, e.g. 6
}

// ParseStateCodes parses a state codes table from r. The table is a
// CSV file with a header naming at least the state, code, and mapid
// columns.
func ParseStateCodes(r io.Reader) ([]StateCode, error) {
	cr := csv.NewReader(r)

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
	for _, req := range []string{"state", "code", "mapid"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("missing column %q", req)
		}
	}

	var codes []StateCode
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		mapID, err := strconv.Atoi(row[cols["mapid"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad mapid %q", line, row[cols["mapid"]])
		}
		codes = append(codes, StateCode{
			State: row[cols["state"]],
			Code:  row[cols["code"]],
			MapID: mapID,
		})
	}
	return codes, nil
}

// ReadStateCodes parses the state codes table at path.
func ReadStateCodes(path string) ([]StateCode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	codes, err := ParseStateCodes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return codes, nil
}
