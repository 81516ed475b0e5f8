package render

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"github.com/soypat/figure/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotConfig controls how figures are drawn. The zero value draws a
// 12cm square image without title.
type PlotConfig struct {
	Width, Height vg.Length
	Title         string
	// Centers marks the center of each figure with its 1 based index.
	Centers bool
	// Margin is the fraction of the drawing extent left empty around the figures.
	Margin float64
}

const (
	defaultPlotSize = 12 * vg.Centimeter
	fillAlpha       = 0x50
)

// CreatePlot draws the figures of c to a file. The image format is taken
// from the file extension (png, svg, pdf, eps, jpg, tif).
func CreatePlot(path string, c *figure.Collection, cfg PlotConfig) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return errors.New("plot path has no file extension")
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WritePlot(file, format, c, cfg)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WritePlot draws the figures of c and writes the image to w in the given format.
func WritePlot(w io.Writer, format string, c *figure.Collection, cfg PlotConfig) error {
	p, err := NewPlot(c, cfg)
	if err != nil {
		return err
	}
	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = defaultPlotSize
	}
	if height == 0 {
		height = width
	}
	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// NewPlot returns a plot with one filled polygon per figure of c. Axes
// share the same scale so figures keep their proportions.
func NewPlot(c *figure.Collection, cfg PlotConfig) (*plot.Plot, error) {
	if c == nil || c.Len() == 0 {
		return nil, errors.New("no figures to plot")
	}
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var centers plotter.XYLabels
	err := c.Each(func(i int, f figure.Figure) error {
		poly, err := plotter.NewPolygon(toXYs(f.Vertices()))
		if err != nil {
			return err
		}
		lc := plotutil.Color(i)
		poly.LineStyle.Color = lc
		poly.LineStyle.Width = vg.Points(1.5)
		poly.Color = withAlpha(lc, fillAlpha)
		p.Add(poly)
		p.Legend.Add(strconv.Itoa(i+1)+" "+f.Kind().String(), poly)

		ctr := f.Center()
		centers.XYs = append(centers.XYs, plotter.XY{X: ctr.X, Y: ctr.Y})
		centers.Labels = append(centers.Labels, strconv.Itoa(i+1))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cfg.Centers {
		sc, err := plotter.NewScatter(centers)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		labels, err := plotter.NewLabels(centers)
		if err != nil {
			return nil, err
		}
		p.Add(sc, labels)
	}
	setEqualAxes(p, c.Bounds(), cfg.Margin)
	return p, nil
}

// setEqualAxes fixes both axis ranges to a square around bb.
func setEqualAxes(p *plot.Plot, bb r2.Box, margin float64) {
	if margin <= 0 {
		margin = 0.1
	}
	box := d2.Box(bb)
	size := box.Size()
	span := math.Max(size.X, size.Y)
	if span == 0 {
		span = 1
	}
	sq := d2.NewBox2(box.Center(), r2.Vec{X: span, Y: span})
	sq = sq.Enlarge(r2.Scale(2*margin*span, r2.Vec{X: 1, Y: 1}))
	p.X.Min, p.X.Max = sq.Min.X, sq.Max.X
	p.Y.Min, p.Y.Max = sq.Min.Y, sq.Max.Y
}

func toXYs(vertices []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(vertices))
	for i, v := range vertices {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

func withAlpha(c color.Color, alpha uint8) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = alpha
	return nc
}
