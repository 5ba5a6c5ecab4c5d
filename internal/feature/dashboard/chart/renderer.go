// Package chart renders a candle sequence as a candlestick chart surface.
package chart

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/candles/domain/entity"
)

const (
	DefaultHeight     = 420
	DefaultBackground = "#ffffff"
	DefaultTextColor  = "#000000"
)

// ErrUnmounted is returned by Draw after the renderer has been unmounted.
var ErrUnmounted = errors.New("chart renderer unmounted")

// Container is the element a chart is drawn into.
type Container interface {
	Width() int
}

// Layout holds the chart colours.
type Layout struct {
	Background string
	TextColor  string
}

// Options configure a new surface.
type Options struct {
	Width  int
	Height int
	Layout Layout
}

// DefaultOptions returns the options for a container of the given width.
func DefaultOptions(width int) Options {
	return Options{
		Width:  width,
		Height: DefaultHeight,
		Layout: Layout{Background: DefaultBackground, TextColor: DefaultTextColor},
	}
}

// Series is a candlestick series on a surface.
type Series interface {
	// SetData replaces the whole series.
	SetData(candles []entity.Candle)
}

// Surface is a chart instance bound to one container.
type Surface interface {
	AddCandlestickSeries() Series
	Render(w io.Writer) error
	Remove()
}

// Factory creates chart surfaces.
type Factory interface {
	CreateChart(c Container, opts Options) (Surface, error)
}

// Renderer owns at most one live surface. Every Render disposes the previous
// surface before creating the next one.
type Renderer struct {
	factory Factory

	mu        sync.Mutex
	surface   Surface
	unmounted bool
}

// NewRenderer creates a Renderer backed by factory.
func NewRenderer(factory Factory) *Renderer {
	return &Renderer{factory: factory}
}

// Render draws data into container. A nil container is ignored, as is any
// call after Unmount.
func (r *Renderer) Render(container Container, data []entity.Candle) error {
	if container == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unmounted {
		return nil
	}

	r.disposeLocked()

	s, err := r.factory.CreateChart(container, DefaultOptions(container.Width()))
	if err != nil {
		slog.Error("failed to create chart", "error", err)
		return err
	}
	s.AddCandlestickSeries().SetData(data)
	r.surface = s
	return nil
}

// Draw writes the live surface to w. It writes nothing when no surface exists.
func (r *Renderer) Draw(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unmounted {
		return ErrUnmounted
	}
	if r.surface == nil {
		return nil
	}
	return r.surface.Render(w)
}

// HasSurface reports whether a live surface exists.
func (r *Renderer) HasSurface() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface != nil
}

// Unmount disposes the live surface. Later calls do nothing.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unmounted {
		return
	}
	r.unmounted = true
	r.disposeLocked()
}

func (r *Renderer) disposeLocked() {
	if r.surface == nil {
		return
	}
	r.surface.Remove()
	r.surface = nil
}
