package viz

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"edascope/internal/analysis"
	"edascope/internal/dataset"
	"edascope/internal/utils"
)

const (
	plotWidth  = 5 * vg.Inch
	plotHeight = 4 * vg.Inch
	histBins   = 10
)

// Histograms renders one PNG per numeric column into dir, capped at
// maxColumns. Columns a histogram cannot be built for (no values, zero
// range) are skipped. Returns the written paths.
func Histograms(ds *dataset.Dataset, dir string, maxColumns int) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	names, series := analysis.NumericSeries(ds)
	var paths []string
	for i, name := range names {
		if maxColumns > 0 && len(paths) >= maxColumns {
			break
		}
		var vals plotter.Values
		for _, v := range series[i] {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		h, err := plotter.NewHist(vals, histBins)
		if err != nil {
			continue
		}
		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = name
		p.Y.Label.Text = "count"
		p.Add(h)

		path := filepath.Join(dir, "hist_"+safeFileName(name)+".png")
		if err := p.Save(plotWidth, plotHeight, path); err != nil {
			return nil, fmt.Errorf("save histogram %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// MissingMatrix renders the dataset's missingness grid (rows x columns, 1 =
// missing) as a heat map. Skipped for empty datasets.
func MissingMatrix(ds *dataset.Dataset, path string) error {
	if ds.NRows() == 0 || ds.NCols() == 0 {
		return nil
	}
	g := &grid{cols: ds.NCols(), rows: ds.NRows()}
	g.z = make([]float64, g.cols*g.rows)
	for c, col := range ds.Columns {
		for r, cell := range col.Cells {
			if dataset.IsMissing(cell) {
				g.z[r*g.cols+c] = 1
			}
		}
	}

	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(g, cm.Palette(2))

	p := plot.New()
	p.Title.Text = "Missing values"
	p.NominalX(ds.ColumnNames()...)
	p.Y.Label.Text = "row"
	p.Add(hm)
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save missing matrix: %w", err)
	}
	return nil
}

// CorrelationHeatmap renders the correlation matrix with a diverging palette
// over [-1, 1]. No-op for an empty matrix.
func CorrelationHeatmap(m analysis.CorrelationMatrix, path string) error {
	if m.Empty() {
		return nil
	}
	n := len(m.Columns)
	g := &grid{cols: n, rows: n, z: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.z[i*n+j] = m.Values[i][j]
		}
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(g, cm.Palette(255))

	p := plot.New()
	p.Title.Text = "Correlation"
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)
	p.Add(hm)
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save correlation heatmap: %w", err)
	}
	return nil
}

// grid adapts a row-major float slice to plotter.GridXYZ.
type grid struct {
	cols, rows int
	z          []float64
}

func (g *grid) Dims() (int, int)   { return g.cols, g.rows }
func (g *grid) Z(c, r int) float64 { return g.z[r*g.cols+c] }
func (g *grid) X(c int) float64    { return float64(c) }
func (g *grid) Y(r int) float64    { return float64(r) }

func safeFileName(name string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")
	out := r.Replace(strings.TrimSpace(name))
	if out == "" {
		return "column"
	}
	return out
}
