// Copyright 2025 The Plot Thickens Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
)

// The map's diverging ramp runs blue through near-white to orange,
// the same scheme the heatmap uses, so the two views read on one
// scale.
var (
	rampLo  = color.RGBA{0x21, 0x66, 0xac, 0xff}
	rampMid = color.RGBA{0xf7, 0xf7, 0xf7, 0xff}
	rampHi  = color.RGBA{0xb3, 0x58, 0x06, 0xff}
)

// BlueOrange maps t in [0, 1] onto the blue-orange diverging ramp.
// Out-of-range values clamp to the ends.
func BlueOrange(t float64) color.RGBA {
	if t <= 0 {
		return rampLo
	}
	if t >= 1 {
		return rampHi
	}
	if t < 0.5 {
		return lerp(rampLo, rampMid, t*2)
	}
	return lerp(rampMid, rampHi, (t-0.5)*2)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// cssFill renders c as an SVG fill style.
func cssFill(c color.RGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
}
