package main

import (
	"image"
	"sort"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/mcsc-impact-climate/truck-range-vs-fuel/cmd/rangeviewer/uihelpers"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/config"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/logging"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/rangemodel"
)

// viewer holds the window, the derived range tables and the two chart
// canvases (volume on top, mass below).
type viewer struct {
	app    fyne.App
	window fyne.Window
	log    logging.Logger

	dataDir string
	tables  map[string]rangemodel.Table
	fuels   []string

	volCanvas  *canvas.Image
	massCanvas *canvas.Image
}

func newViewer(cfg *config.Config, log logging.Logger, dataDir string, tables map[string]rangemodel.Table) *viewer {
	a := app.NewWithID("edu.mit.mcsc.truckrange")
	w := a.NewWindow("Truck Range vs Fuel")
	w.Resize(fyne.NewSize(float32(cfg.Viewer.WindowWidth), float32(cfg.Viewer.WindowHeight)))

	v := &viewer{
		app:     a,
		window:  w,
		log:     log,
		dataDir: dataDir,
	}
	v.setTables(tables)

	v.volCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	v.volCanvas.FillMode = canvas.ImageFillContain
	v.massCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	v.massCanvas.FillMode = canvas.ImageFillContain
	cw, ch := chartSize(v)
	v.volCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	v.massCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))

	chartsColumn := container.NewVBox(
		v.volCanvas,
		widget.NewSeparator(),
		v.massCanvas,
	)
	chartsScroll := container.NewVScroll(chartsColumn)
	w.SetContent(chartsScroll)

	v.buildMenus()
	v.watchResize()
	v.redrawCharts()
	return v
}

// Run shows the window and blocks until it is closed.
func (v *viewer) Run() {
	v.window.ShowAndRun()
}

func (v *viewer) setTables(tables map[string]rangemodel.Table) {
	v.tables = tables
	v.fuels = make([]string, 0, len(tables))
	for name := range tables {
		v.fuels = append(v.fuels, name)
	}
	sort.Strings(v.fuels)
}

func (v *viewer) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Data", func() { v.reload() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { v.window.Close() }),
	)
	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := v.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { v.reload() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { v.reload() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { v.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { v.window.Close() })
	}
}

// reload re-reads the CSVs and rebuilds the tables, keeping the window open.
func (v *viewer) reload() {
	in, err := loadInputs(v.dataDir)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	tables, err := rangemodel.BuildTables(in.truck, in.economy, in.properties, v.log)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	v.setTables(tables)
	v.log.Infof("reloaded range tables for %d fuels", len(tables))
	v.redrawCharts()
}

// watchResize polls the canvas size and redraws the charts when the window
// width changes, so they scale with the window.
func (v *viewer) watchResize() {
	if v.window.Canvas() == nil {
		return
	}
	prevW := int(v.window.Canvas().Size().Width)
	done := make(chan struct{})
	v.window.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := v.window.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { v.redrawCharts() })
				}
			}
		}
	}()
}

func (v *viewer) redrawCharts() {
	cw, ch := chartSize(v)
	if img := renderVolumeChart(v); img != nil {
		v.volCanvas.Image = img
		v.volCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
		v.volCanvas.Refresh()
	}
	if img := renderMassChart(v); img != nil {
		v.massCanvas.Image = img
		v.massCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
		v.massCanvas.Refresh()
	}
}

// chartSize derives one panel's size from the current window width.
func chartSize(v *viewer) (int, int) {
	if v == nil || v.window == nil || v.window.Canvas() == nil {
		return 1000, 380
	}
	sz := v.window.Canvas().Size()
	raw := int(sz.Width*0.95) - 12
	return uihelpers.ComputeChartDimensions(raw)
}
