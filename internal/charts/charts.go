// Package charts renders the dashboard charts as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no chart data")

// palette follows the dashboard's pie colours (amber, emerald, blue, violet, pink).
var palette = []drawing.Color{
	drawing.ColorFromHex("f59e0b"),
	drawing.ColorFromHex("10b981"),
	drawing.ColorFromHex("3b82f6"),
	drawing.ColorFromHex("8b5cf6"),
	drawing.ColorFromHex("ec4899"),
}

// RenderEvolution renders the monthly evolution series as a line chart.
// Needs at least two points.
func RenderEvolution(points []model.EvolutionPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 data points, got %d", ErrNoData, len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	labels := make(map[int64]string, len(points))
	for i, p := range points {
		xValues[i] = p.Month
		yValues[i] = p.Value
		labels[p.Month.Unix()] = p.Label
	}

	series := chart.TimeSeries{
		Name: "Património",
		Style: chart.Style{
			StrokeColor: palette[0],
			FillColor:   palette[0].WithAlpha(50),
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  "Evolução do Património",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					t := chart.TimeFromFloat64(f)
					if l, ok := labels[t.Unix()]; ok {
						return l
					}
					return t.Format("01/06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1fM", f/1_000_000)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	return render(graph.Render)
}

// RenderDistribution renders the distribution-by-type breakdown as a pie chart.
func RenderDistribution(groups []model.TypeAllocation) ([]byte, error) {
	values := make([]chart.Value, 0, len(groups))
	total := 0.0
	for i, g := range groups {
		if g.Value <= 0 {
			continue
		}
		total += g.Value
		values = append(values, chart.Value{
			Label: g.Label,
			Value: g.Value,
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}
	if len(values) == 0 || total == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:  "Distribuição por Tipo",
		Width:  512,
		Height: 512,
		Values: values,
	}

	return render(pie.Render)
}

func render(fn func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := fn(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
