package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mcsc-impact-climate/truck-range-vs-fuel/cmd/rangeviewer/uihelpers"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/rangemodel"
)

const efficiencyFootnote = "Assumes the same energy-to-distance conversion rate for every fuel chemistry."

// lineStyle returns the stroke style for the i-th fuel series.
func lineStyle(i int) chart.Style {
	return chart.Style{
		StrokeColor: chart.GetDefaultColor(i),
		StrokeWidth: 2.0,
	}
}

func renderVolumeChart(v *viewer) image.Image {
	return renderPercentChart(v,
		"Fuel Volume as Percentage of Dry Van Volume",
		"Fuel Volume (% of Dry Van Volume)",
		func(r rangemodel.Row) float64 { return r.VolumePctOfDryVan },
	)
}

func renderMassChart(v *viewer) image.Image {
	return renderPercentChart(v,
		"Fuel Mass as Percentage of GVW",
		"Fuel Mass (% of GVW)",
		func(r rangemodel.Row) float64 { return r.MassPctOfGVW },
	)
}

// renderPercentChart draws one percentage-vs-range panel with a line per fuel.
func renderPercentChart(v *viewer, title, yLabel string, value func(rangemodel.Row) float64) image.Image {
	cw, ch := chartSize(v)
	if len(v.fuels) == 0 {
		return blank(cw, ch)
	}

	series := make([]chart.Series, 0, len(v.fuels))
	maxY := 0.0
	for i, fuel := range v.fuels {
		table := v.tables[fuel]
		xs := make([]float64, len(table.Rows))
		ys := make([]float64, len(table.Rows))
		for j, row := range table.Rows {
			xs[j] = row.RangeMiles
			ys[j] = value(row)
			if ys[j] > maxY {
				maxY = ys[j]
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fuel,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(i),
		})
	}

	if maxY <= 0 {
		maxY = 1
	}
	yTickVals := uihelpers.BuildNumericTicks(0, maxY, 6)
	yTicks := make([]chart.Tick, 0, len(yTickVals))
	for _, t := range yTickVals {
		yTicks = append(yTicks, chart.Tick{Value: t, Label: uihelpers.FormatTick(t)})
	}

	c := chart.Chart{
		Title:      title,
		Width:      cw,
		Height:     ch,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 40}},
		XAxis:      ladderXAxis(),
		YAxis: chart.YAxis{
			Name:  yLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: yTickVals[len(yTickVals)-1]},
			Ticks: yTicks,
		},
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		v.log.Errorf("chart render failed (%s): %v; showing blank fallback", title, err)
		return blank(cw, ch)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		v.log.Errorf("chart decode failed (%s): %v; showing blank fallback", title, err)
		return blank(cw, ch)
	}
	return drawFootnote(img, efficiencyFootnote)
}

// ladderXAxis builds the shared X axis with one tick per target range.
func ladderXAxis() chart.XAxis {
	ladder := rangemodel.RangeLadder()
	ticks := make([]chart.Tick, 0, len(ladder))
	for _, m := range ladder {
		ticks = append(ticks, chart.Tick{Value: m, Label: fmt.Sprintf("%.0f", m)})
	}
	first := ladder[0]
	last := ladder[len(ladder)-1]
	step := ladder[1] - ladder[0]
	return chart.XAxis{
		Name:  "Truck Range (miles)",
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: first - step/2, Max: last + step/2},
	}
}

// blank returns a plain light image so the canvas visibly updates even when
// rendering fails or no fuels survived the lookup.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 250, G: 250, B: 250, A: 255}), image.Point{}, draw.Src)
	return img
}

// drawFootnote draws a small annotation near the bottom-left of the chart.
func drawFootnote(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	pad := 6
	x := b.Min.X + pad
	y := b.Max.Y - pad
	shadow := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 200})
	textCol := image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255})

	drawString := func(dx, dy int, src *image.Uniform) {
		d := &font.Drawer{Dst: rgba, Src: src, Face: face}
		d.Dot = fixed.P(x+dx, y+dy)
		d.DrawString(text)
	}
	drawString(1, 1, shadow)
	drawString(0, 0, textCol)
	return rgba
}
