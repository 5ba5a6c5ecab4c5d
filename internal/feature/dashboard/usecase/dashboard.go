// Package usecase composes the dashboard root component from the candle loader
// and the chart renderer.
package usecase

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"log/slog"
	"sync"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	candleusecase "github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/usecase"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/chart"
)

// PageTitle is the document title of the dashboard page.
const PageTitle = "ENMA Dashboard"

var pageTpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Symbol}} {{.Timeframe}}</p>
{{if .Chart}}{{.Chart}}{{else}}<p>Loading…</p>{{end}}
</body>
</html>
`))

// Viewport is a fixed-width chart container.
type Viewport struct {
	width int
}

var _ chart.Container = Viewport{}

// NewViewport returns a container of the given pixel width.
func NewViewport(width int) Viewport {
	return Viewport{width: width}
}

// Width returns the container width in pixels.
func (v Viewport) Width() int { return v.width }

// Dashboard is the root component. It owns one DataLoader and one chart
// Renderer and re-renders the chart when the loader publishes candles.
type Dashboard struct {
	loader   *candleusecase.DataLoader
	renderer *chart.Renderer

	mu        sync.Mutex
	container chart.Container
}

// NewDashboard wires a loader for q to renderer.
func NewDashboard(source candleusecase.HistoricalSource, q candleusecase.Query, renderer *chart.Renderer) *Dashboard {
	d := &Dashboard{renderer: renderer}
	d.loader = candleusecase.NewDataLoader(source, q, candleusecase.WithOnLoad(d.onLoad))
	return d
}

// Mount starts loading candles.
func (d *Dashboard) Mount(ctx context.Context) {
	d.loader.Mount(ctx)
}

// Unmount cancels loading and disposes the chart. It is safe to call more than once.
func (d *Dashboard) Unmount() {
	d.loader.Unmount()
	d.renderer.Unmount()
}

// AttachContainer sets the chart container. Only the first container is kept;
// candles loaded before it arrived are rendered into it right away.
func (d *Dashboard) AttachContainer(c chart.Container) {
	if c == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.container != nil {
		return
	}
	d.container = c
	d.renderLocked(d.loader.Candles())
}

// State is a snapshot of the dashboard render state.
type State struct {
	Symbol     string `json:"symbol"`
	Timeframe  string `json:"timeframe"`
	Limit      int    `json:"limit"`
	Loaded     bool   `json:"loaded"`
	Candles    int    `json:"candles"`
	ChartReady bool   `json:"chart_ready"`
	Error      string `json:"error,omitempty"`
}

// State reports the loader and chart state.
func (d *Dashboard) State() State {
	q := d.loader.Query()
	st := State{
		Symbol:     q.Symbol,
		Timeframe:  q.Timeframe,
		Limit:      q.Limit,
		Loaded:     d.loader.Loaded(),
		Candles:    len(d.loader.Candles()),
		ChartReady: d.renderer.HasSurface(),
	}
	if err := d.loader.Err(); err != nil {
		st.Error = err.Error()
	}
	return st
}

// Done is closed once the load has finished or been abandoned.
func (d *Dashboard) Done() <-chan struct{} {
	return d.loader.Done()
}

// View writes the dashboard page. It shows the chart once candles are loaded
// and a loading message otherwise, including after a failed load.
func (d *Dashboard) View(w io.Writer) error {
	q := d.loader.Query()
	var data struct {
		Title     string
		Symbol    string
		Timeframe string
		Chart     template.HTML
	}
	data.Title = PageTitle
	data.Symbol = q.Symbol
	data.Timeframe = q.Timeframe

	if d.renderer.HasSurface() {
		var buf bytes.Buffer
		if err := d.renderer.Draw(&buf); err != nil {
			slog.Warn("chart unavailable", "error", err)
		} else {
			data.Chart = template.HTML(buf.String())
		}
	}
	return pageTpl.Execute(w, data)
}

func (d *Dashboard) onLoad(candles []entity.Candle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderLocked(candles)
}

func (d *Dashboard) renderLocked(candles []entity.Candle) {
	if d.container == nil || len(candles) == 0 {
		return
	}
	if err := d.renderer.Render(d.container, candles); err != nil {
		slog.Error("failed to render chart", "count", len(candles), "error", err)
	}
}
