package adapter

import "time"

// BreakdownSlice is one category's share of the expense breakdown chart.
type BreakdownSlice struct {
	Label      string
	Amount     float64
	Percentage float64
}

// ProjectionPoint is one point on the savings projection chart.
type ProjectionPoint struct {
	Date    time.Time
	Balance float64
}

// ChartRenderer renders dashboard data to PNG images.
type ChartRenderer interface {
	// RenderBreakdown renders the expense breakdown as a donut chart.
	RenderBreakdown(slices []BreakdownSlice) ([]byte, error)

	// RenderProjection renders the savings projection as a line chart.
	RenderProjection(points []ProjectionPoint) ([]byte, error)
}
