package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/fragmap/internal/history"
	"github.com/Sumatoshi-tech/fragmap/pkg/fragmap"
)

const (
	chartWidth     = "100%"
	chartHeight    = "700px"
	labelFontSize  = 10
	rotateDegrees  = 45
	maxTouchWeight = 3
)

// renderHTML writes the fragmap as a standalone HTML heatmap: clusters on
// the X axis, commits on the Y axis, cells weighted by touch kind.
func renderHTML(w io.Writer, fm *fragmap.FragMap, commits []history.CommitMeta) error {
	xLabels := make([]string, len(fm.Clusters))
	for j := range fm.Clusters {
		xLabels[j] = "cluster " + strconv.Itoa(j)
	}

	yLabels := make([]string, len(fm.Commits))
	for i, oid := range fm.Commits {
		yLabels[i] = shortOID(oid)

		if summary := summaryFor(commits, oid); summary != "" {
			yLabels[i] += " " + truncate(summary, maxSummaryWidth)
		}
	}

	data := make([]opts.HeatMapData, 0, len(fm.Commits)*len(fm.Clusters))

	for i := range fm.Matrix {
		for j, kind := range fm.Matrix[i] {
			if kind == fragmap.TouchNone {
				continue
			}

			data = append(data, opts.HeatMapData{
				Value: []any{j, i, touchWeight(kind)},
			})
		}
	}

	heatMap := charts.NewHeatMap()
	heatMap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Fragmap",
			Subtitle: "Which commits touch which code regions",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category", Data: xLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Rotate: rotateDegrees, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: maxTouchWeight,
			InRange: &opts.VisualMapInRange{Color: []string{"#ebedf0", "#9be9a8", "#40c463", "#216e39"}},
			Orient:  "horizontal", Left: "center", Bottom: "2%",
		}),
	)

	heatMap.AddSeries("touches", data)

	err := heatMap.Render(w)
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}

	return nil
}

// touchWeight orders touch kinds for the heatmap color ramp.
func touchWeight(kind fragmap.TouchKind) int {
	switch kind {
	case fragmap.TouchAdded:
		return maxTouchWeight
	case fragmap.TouchModified:
		return 2
	case fragmap.TouchDeleted:
		return 1
	case fragmap.TouchNone:
		return 0
	default:
		return 0
	}
}
