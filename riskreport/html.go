// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"html/template"
	"io"
	"math"
)

const htmlReport = `
<html>
  <head>
    <meta charset="utf-8" />
    <title>Cancer risk factor report</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
  max-width: 1100px;
  margin: 0 auto;
}
h1 {
  font-size: 150%;
}
h2 {
  font-size: 120%;
  border-bottom: 1px solid #ddd;
  padding-bottom: 4px;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>tbody>tr>th, table>thead>tr>th {
  padding: 6px 12px;
  vertical-align: top;
  line-height: 1.4;
}
table.lined>tbody>tr>td, table.lined>tbody>tr>th {
  border-top: 1px solid #ddd;
}
table.lined>thead>tr>th {
  vertical-align: bottom;
  border-bottom: 2px solid #ddd;
}
th {
  text-align: left;
}
td.num, th.num {
  text-align: right;
}
.meta {
  color: #777;
  font-size: 90%;
}
    </style>
  </head>
  <body>
    <h1>Cancer DALY rates by risk factor, {{.TimeLabel}}</h1>
    <p class="meta">
      {{.NumRecords}} records
      ({{.NumRisks}} risk factors, {{.NumCancers}} cancer types,
      {{.NumStates}} states, {{.YearLo}}&ndash;{{.YearHi}});
      dataset {{.Fingerprint}}
    </p>

    <h2>Rate by risk factor and cancer type</h2>
    {{.HeatmapSVG}}

    <h2>{{.Cancer}} over time</h2>
    {{.TrendSVG}}

    <h2>Rate by state</h2>
    {{.MapSVG}}

    <h2>Highest rates</h2>
    <table class="lined">
      <thead>
        <tr><th>Risk factor</th><th>Cancer type</th><th class="num">Mean rate</th><th class="num">Records</th></tr>
      </thead>
      <tbody>
        {{range .TopPairs}}
        <tr><td>{{.RiskFactor}}</td><td>{{.Cancer}}</td><td class="num">{{rate .Value}}</td><td class="num">{{.N}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </body>
</html>
`

var htmlFuncs = template.FuncMap(map[string]interface{}{
	"rate": func(v float64) string {
		if math.IsNaN(v) {
			return "no data"
		}
		return fmt.Sprintf("%.2f", v)
	},
})

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(htmlReport))

func printHTMLReport(w io.Writer, r *report) error {
	return htmlTemplate.Execute(w, r)
}
