// Package plot renders learned state values as HTML charts.
package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrEmptyValues = errors.New("no values to plot")

// RenderHeatmap writes an HTML page with a heatmap of values, where values[r][c]
// is the best action value of grid cell (r, c). Row 0 is drawn at the top.
func RenderHeatmap(w io.Writer, title string, values [][]float64) error {
	if len(values) == 0 || len(values[0]) == 0 {
		return ErrEmptyValues
	}

	rows, cols := len(values), len(values[0])
	xs := make([]string, cols)
	for c := range xs {
		xs[c] = fmt.Sprintf("%d", c)
	}
	ys := make([]string, rows)
	for r := range ys {
		ys[r] = fmt.Sprintf("%d", rows-1-r)
	}

	lo, hi := values[0][0], values[0][0]
	items := make([]opts.HeatMapData, 0, rows*cols)
	for r, row := range values {
		for c, v := range row {
			lo = min(lo, v)
			hi = max(hi, v)
			items = append(items, opts.HeatMapData{Value: [3]interface{}{c, rows - 1 - r, v}})
		}
	}
	if lo == hi {
		hi = lo + 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: float32(lo),
			Max: float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#74add1", "#fee090", "#f46d43", "#a50026"},
			},
		}),
	)
	hm.SetXAxis(xs).AddSeries("state value", items)

	page := components.NewPage()
	page.AddCharts(hm)
	return page.Render(w)
}
