// Package render draws a cycloidal.Scene with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/soypat/cycloidal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Config controls how a scene is drawn.
type Config struct {
	Size        vg.Length   // side of the square figure
	DPI         int         // output resolution of raster formats
	Supersample int         // raster images are drawn this many times larger and downsampled
	ArcSegments int         // segments used for a full circle
	LineWidth   vg.Length   // width of every outline
	Color       color.Color // outline color
	Title       string
	HideAxes    bool
}

// DefaultConfig returns a 6 inch, 96 DPI black outline drawing.
func DefaultConfig() Config {
	return Config{
		Size:        6 * vg.Inch,
		DPI:         96,
		Supersample: 2,
		ArcSegments: 180,
		LineWidth:   vg.Points(1),
		Color:       color.Black,
	}
}

func (cfg Config) validate() error {
	switch {
	case cfg.Size <= 0:
		return errors.New("render: figure size must be positive")
	case cfg.DPI <= 0:
		return errors.New("render: DPI must be positive")
	case cfg.Supersample < 1:
		return errors.New("render: supersample must be at least 1")
	case cfg.ArcSegments < 3:
		return errors.New("render: need at least 3 arc segments")
	}
	return nil
}

// Plot returns a plot of every shape in s. The axes are fixed to s.Bounds so
// the drive is drawn to scale in a square figure.
func Plot(s cycloidal.Scene, cfg Config) (*plot.Plot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(s.Rotor) == 0 {
		return nil, errors.New("render: empty scene")
	}
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Min, p.X.Max = s.Bounds.Min.X, s.Bounds.Max.X
	p.Y.Min, p.Y.Max = s.Bounds.Min.Y, s.Bounds.Max.Y
	if cfg.HideAxes {
		p.HideAxes()
	}

	outlines := []cycloidal.Polyline{s.Rotor}
	for _, c := range s.Circles() {
		outlines = append(outlines, c.Polyline(cfg.ArcSegments))
	}
	for _, w := range s.Wedges() {
		n := int(math.Ceil(math.Abs(w.Span()) / 360 * float64(cfg.ArcSegments)))
		if n < 2 {
			n = 2
		}
		outlines = append(outlines, w.Polyline(n))
	}
	for i, pl := range outlines {
		l, err := plotter.NewLine(xys(pl))
		if err != nil {
			return nil, fmt.Errorf("render: outline %d: %w", i, err)
		}
		l.LineStyle.Width = cfg.LineWidth
		l.LineStyle.Color = cfg.Color
		p.Add(l)
	}
	return p, nil
}

// WritePNG draws s and writes it to w as a PNG image.
func WritePNG(w io.Writer, s cycloidal.Scene, cfg Config) error {
	p, err := Plot(s, cfg)
	if err != nil {
		return err
	}
	c := vgimg.NewWith(vgimg.UseWH(cfg.Size, cfg.Size), vgimg.UseDPI(cfg.DPI*cfg.Supersample))
	p.Draw(draw.New(c))
	img := c.Image()
	if cfg.Supersample > 1 {
		// downsample image for antialiasing
		width := uint(img.Bounds().Dx() / cfg.Supersample)
		height := uint(img.Bounds().Dy() / cfg.Supersample)
		return png.Encode(w, resize.Resize(width, height, img, resize.Bilinear))
	}
	return png.Encode(w, img)
}

// WriteSVG draws s and writes it to w as an SVG document.
func WriteSVG(w io.Writer, s cycloidal.Scene, cfg Config) error {
	p, err := Plot(s, cfg)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(cfg.Size, cfg.Size, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// CreateFile draws s to the file at path. The format is chosen by the file
// extension, ".png" or ".svg".
func CreateFile(path string, s cycloidal.Scene, cfg Config) (err error) {
	var write func(io.Writer, cycloidal.Scene, Config) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".svg":
		write = WriteSVG
	default:
		return fmt.Errorf("render: unsupported file extension %q", ext)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return write(file, s, cfg)
}

func xys(pl cycloidal.Polyline) plotter.XYs {
	pts := make(plotter.XYs, len(pl))
	for i, v := range pl {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}
