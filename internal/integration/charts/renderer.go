// Package charts renders dashboard data to PNG images with go-chart.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/finova/backend/internal/application/adapter"
)

// ErrNoChartData is returned when there is nothing to plot.
var ErrNoChartData = errors.New("no data to chart")

// Renderer implements the adapter.ChartRenderer interface.
type Renderer struct{}

// NewRenderer creates a new chart renderer instance.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderBreakdown renders the expense breakdown as a donut chart. Slices
// below one percent are folded away to keep the labels legible.
func (r *Renderer) RenderBreakdown(slices []adapter.BreakdownSlice) ([]byte, error) {
	if len(slices) == 0 {
		return nil, ErrNoChartData
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Percentage < 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.1f%%)", s.Label, s.Amount, s.Percentage),
			Value: s.Amount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrNoChartData
	}

	donut := chart.DonutChart{
		Title:  "Monthly Spending by Category",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := donut.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderProjection renders the savings projection as a line chart.
func (r *Renderer) RenderProjection(points []adapter.ProjectionPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, ErrNoChartData
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = float64(i)
		yValues[i] = p.Balance
	}

	graph := chart.Chart{
		Title:  "Savings Projection",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("+%.0fmo", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Projected balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render projection chart: %w", err)
	}
	return buffer.Bytes(), nil
}

var _ adapter.ChartRenderer = (*Renderer)(nil)
