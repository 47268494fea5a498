/*
 * chemplot/massfraction.go, part of chemica/chemplot.
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

/*Package chemplot draws plots of chemica compositions, using gonum/plot.*/
package chemplot

import (
	"github.com/rmera/chemica"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//MassFractionPlot draws a bar chart with the mass fraction of each element in c,
//with the element names on the X axis, and saves it to filename. The format is taken
//from the extension of filename (png, svg, pdf, etc). If opts is nil, DefaultOptions are used.
func MassFractionPlot(c *chemica.Composition, title, filename string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if c == nil || c.Len() == 0 {
		return chemica.NewError("empty composition", "chemplot.MassFractionPlot")
	}
	p, err := massFractionPlot(c, title, opts)
	if err != nil {
		return chemica.ErrDecorate(err, "chemplot.MassFractionPlot")
	}
	if err := p.Save(opts.width, opts.height, filename); err != nil {
		return chemica.ErrDecorate(err, "chemplot.MassFractionPlot: saving "+filename)
	}
	return nil
}

func massFractionPlot(c *chemica.Composition, title string, opts *Options) (*plot.Plot, error) {
	fractions := c.MassFractions()
	ymax := 1.0
	label := "Mass fraction"
	if opts.percent {
		for i := range fractions {
			fractions[i] *= 100
		}
		ymax = 100
		label = "Mass %"
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = label
	p.Y.Min = 0
	p.Y.Max = ymax
	p.Add(plotter.NewGrid())
	bars, err := plotter.NewBarChart(plotter.Values(fractions), opts.barWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = opts.color
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	names := make([]string, c.Len())
	for i := range names {
		names[i] = c.Element(i).Name()
	}
	p.NominalX(names...)
	return p, nil
}
