// Package chart renders price history series as PNG line charts.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Verderen/MoneyHiver/internal/model"
)

// RenderPriceChart renders a PNG line chart for a symbol's price series.
// Series built from a fallback scalar render in amber instead of green so
// the interpolated data is visually distinct. Returns raw PNG bytes.
func RenderPriceChart(symbol string, series model.Series) ([]byte, error) {
	if len(series.Points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(series.Points))
	}

	xValues := make([]time.Time, len(series.Points))
	yValues := make([]float64, len(series.Points))
	for i, p := range series.Points {
		xValues[i] = time.UnixMilli(p.Timestamp)
		yValues[i] = p.Price
	}

	stroke := drawing.ColorFromHex("16a34a") // green-600
	if series.Fallback {
		stroke = drawing.ColorFromHex("d97706") // amber-600
	}

	priceSeries := chart.TimeSeries{
		Name: symbol,
		Style: chart.Style{
			StrokeColor: stroke,
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  symbol,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 2 15:04")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{priceSeries},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
