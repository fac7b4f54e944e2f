// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/txline/sweep"
)

func writeHTML(w io.Writer, series []sweep.Series, o Options) error {
	if err := sameGrid(series); err != nil {
		return err
	}
	line := createChart(series, o)
	if err := line.Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}

	return nil
}

// sameGrid requires every series to share the first series' frequencies,
// since the chart has a single x axis.
func sameGrid(series []sweep.Series) error {
	ref := series[0].Freq
	for _, s := range series[1:] {
		if len(s.Freq) != len(ref) {
			return fmt.Errorf("%w: %q has %d points, %q has %d", ErrGridMismatch, series[0].Name, len(ref), s.Name, len(s.Freq))
		}
		for i := range ref {
			if s.Freq[i] != ref[i] {
				return fmt.Errorf("%w: %q and %q differ at point %d", ErrGridMismatch, series[0].Name, s.Name, i)
			}
		}
	}

	return nil
}

// createChart plots attenuation (dB per o.Unit) of every series against the
// shared frequency grid, scaled to a readable SI prefix. Callers check the
// grids with sameGrid first.
func createChart(series []sweep.Series, o Options) *charts.Line {
	unit := o.unit()
	title := o.Title
	if title == "" {
		title = "Attenuation"
	}
	div, prefix := frequencyScale(series[0].Freq)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("attenuation, dB/%s", unit),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "attenuation",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "frequency, " + prefix,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  fmt.Sprintf("attenuation, dB/%s", unit),
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	x := make([]string, len(series[0].Freq))
	for i, f := range series[0].Freq {
		x[i] = strconv.FormatFloat(f/div, 'g', 4, 64)
	}
	line.SetXAxis(x)

	for _, s := range series {
		db := s.AttenuationDB(unit)
		data := make([]opts.LineData, len(db))
		for i, v := range db {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}

	return line
}

// frequencyScale picks the SI prefix matching the largest frequency.
func frequencyScale(freqs []float64) (float64, string) {
	hi := 0.0
	for _, f := range freqs {
		if f > hi {
			hi = f
		}
	}
	switch {
	case hi >= 1e12:
		return 1e12, "THz"
	case hi >= 1e9:
		return 1e9, "GHz"
	case hi >= 1e6:
		return 1e6, "MHz"
	case hi >= 1e3:
		return 1e3, "kHz"
	default:
		return 1, "Hz"
	}
}
