/*
 * chemplot/options.go, part of chemica/chemplot.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

//Options contains the settings for the plots produced by this package.
type Options struct {
	width    vg.Length
	height   vg.Length
	barWidth vg.Length
	color    color.Color
	percent  bool //plot percentages instead of fractions
}

//DefaultOptions returns options for a 10x8 cm plot with
//dark blue bars, and the mass given as a fraction.
func DefaultOptions() *Options {
	r := new(Options)
	r.width = 10 * vg.Centimeter
	r.height = 8 * vg.Centimeter
	r.barWidth = vg.Points(20)
	r.color = color.RGBA{R: 31, G: 58, B: 147, A: 255}
	return r
}

//Width returns the width of the image, and sets it to a new value, if given.
func (O *Options) Width(w ...vg.Length) vg.Length {
	if len(w) > 0 && w[0] > 0 {
		O.width = w[0]
	}
	return O.width
}

//Height returns the height of the image, and sets it to a new value, if given.
func (O *Options) Height(h ...vg.Length) vg.Length {
	if len(h) > 0 && h[0] > 0 {
		O.height = h[0]
	}
	return O.height
}

//BarWidth returns the width of each bar, and sets it to a new value, if given.
func (O *Options) BarWidth(b ...vg.Length) vg.Length {
	if len(b) > 0 && b[0] > 0 {
		O.barWidth = b[0]
	}
	return O.barWidth
}

//Color returns the color of the bars, and sets it to a new value, if given.
func (O *Options) Color(c ...color.Color) color.Color {
	if len(c) > 0 && c[0] != nil {
		O.color = c[0]
	}
	return O.color
}

//Percent returns true if the bars are given in percent, and sets it to a new value, if given.
func (O *Options) Percent(p ...bool) bool {
	if len(p) > 0 {
		O.percent = p[0]
	}
	return O.percent
}
