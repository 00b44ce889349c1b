// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timeseries

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderChart draws the per-minute request counts as a line chart
// and writes it as a PNG file to outPath, overwriting a possibly
// existing file. The function holds no state between calls.
func RenderChart(series *Series, outPath string) error {
	p := plot.New()
	p.Title.Text = "Requests per Minute"
	p.Y.Label.Text = "Number of Requests"
	p.X.Tick.Marker = plot.TimeTicks{Format: "02/01 15:04"}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(series.Buckets))
	for i, b := range series.Buckets {
		pts[i].X = float64(b.Start.Unix())
		pts[i].Y = float64(b.Count)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build chart line: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	if err := p.Save(14*vg.Inch, 7*vg.Inch, outPath); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", outPath, err)
	}
	return nil
}
