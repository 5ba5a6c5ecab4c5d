// Package echarts implements chart surfaces with go-echarts candlestick charts.
package echarts

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/chart"
)

const (
	seriesName  = "candles"
	labelLayout = "2006-01-02 15:04"
)

// ErrSurfaceRemoved is returned when rendering a surface after Remove.
var ErrSurfaceRemoved = errors.New("chart surface removed")

var fragmentTpl = template.Must(template.New("fragment").Parse(
	`<script src="{{.Asset}}"></script>
{{.Element}}
{{.Script}}
`))

// Factory creates go-echarts surfaces and counts the ones not yet removed.
type Factory struct {
	title string
	live  atomic.Int64
}

var _ chart.Factory = (*Factory)(nil)

// NewFactory creates a Factory whose charts carry title.
func NewFactory(title string) *Factory {
	return &Factory{title: title}
}

// CreateChart returns a new surface sized for c.
func (f *Factory) CreateChart(c chart.Container, o chart.Options) (chart.Surface, error) {
	if c == nil {
		return nil, errors.New("echarts: nil container")
	}
	if o.Width <= 0 {
		return nil, fmt.Errorf("echarts: invalid width %d", o.Width)
	}
	f.live.Add(1)
	return &Surface{factory: f, title: f.title, opts: o}, nil
}

// Live returns the number of surfaces created and not yet removed.
func (f *Factory) Live() int {
	return int(f.live.Load())
}

// Surface is one candlestick chart. The go-echarts chart is built on each Render
// from the current series data.
type Surface struct {
	factory *Factory
	title   string
	opts    chart.Options

	mu      sync.Mutex
	series  []*Series
	removed bool
}

var _ chart.Surface = (*Surface)(nil)

// AddCandlestickSeries attaches a new empty series.
func (s *Surface) AddCandlestickSeries() chart.Series {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr := &Series{}
	s.series = append(s.series, sr)
	return sr
}

// Render writes the chart as an embeddable HTML fragment.
func (s *Surface) Render(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return ErrSurfaceRemoved
	}

	kline := s.buildLocked()
	snippet := kline.RenderSnippet()
	return fragmentTpl.Execute(w, struct {
		Asset   string
		Element template.HTML
		Script  template.HTML
	}{
		Asset:   kline.Initialization.AssetsHost + opts.EchartsJS,
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
	})
}

// Remove disposes the surface. Only the first call has an effect.
func (s *Surface) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return
	}
	s.removed = true
	s.series = nil
	s.factory.live.Add(-1)
}

func (s *Surface) buildLocked() *charts.Kline {
	layout := s.opts.Layout
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           strconv.Itoa(s.opts.Width) + "px",
			Height:          strconv.Itoa(s.opts.Height) + "px",
			BackgroundColor: layout.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      s.title,
			TitleStyle: &opts.TextStyle{Color: layout.TextColor},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: layout.TextColor},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale:     opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Color: layout.TextColor},
		}),
	)

	var labels []string
	for i, sr := range s.series {
		candles := sr.snapshot()
		items := make([]opts.KlineData, 0, len(candles))
		for _, c := range candles {
			// ECharts expects [open, close, low, high].
			items = append(items, opts.KlineData{Value: [4]float64{c.Open, c.Close, c.Low, c.High}})
		}
		if i == 0 {
			labels = timeLabels(candles)
		}
		kline.AddSeries(seriesName, items)
	}
	kline.SetXAxis(labels)
	return kline
}

func timeLabels(candles []entity.Candle) []string {
	out := make([]string, 0, len(candles))
	for _, c := range candles {
		out = append(out, time.Unix(c.Time, 0).UTC().Format(labelLayout))
	}
	return out
}

// Series holds the candles of one candlestick series.
type Series struct {
	mu      sync.Mutex
	candles []entity.Candle
}

var _ chart.Series = (*Series)(nil)

// SetData replaces the series data with a copy of candles.
func (sr *Series) SetData(candles []entity.Candle) {
	cp := make([]entity.Candle, len(candles))
	copy(cp, candles)
	sr.mu.Lock()
	sr.candles = cp
	sr.mu.Unlock()
}

func (sr *Series) snapshot() []entity.Candle {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.candles
}
