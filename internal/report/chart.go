package report

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

// RenderChart draws a merged comparison table as a grouped bar chart
// and returns the encoded PNG.
func RenderChart(m *compare.Merged, title, unit string) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("report: nil table for chart %q", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = unit
	p.Legend.Top = true

	columns := m.Columns()
	barWidth := vg.Points(float64(48) / float64(len(columns)))
	offset := -barWidth * vg.Length(len(columns)-1) / 2
	for i, column := range columns {
		bars, err := plotter.NewBarChart(plotter.Values(m.ColumnValues(column)), barWidth)
		if err != nil {
			return nil, fmt.Errorf("report: chart %q: %w", title, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = offset + barWidth*vg.Length(i)
		p.Add(bars)
		p.Legend.Add(column, bars)
	}
	p.NominalX(m.Labels()...)

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("report: render chart %q: %w", title, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("report: encode chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
