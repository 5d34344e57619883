package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gogpu/annotate"
	"github.com/gogpu/annotate/canvas"
	"github.com/gogpu/annotate/recording"
)

// Scene is the demo input: a viewport, a style cycle and the annotations to
// draw on it.
type Scene struct {
	Width       int                      `yaml:"width"`
	Height      int                      `yaml:"height"`
	XLim        [2]float64               `yaml:"xlim"`
	YLim        [2]float64               `yaml:"ylim"`
	Invert      bool                     `yaml:"invert"`
	Ranges      map[string][2]float64    `yaml:"ranges"`
	Styles      []map[string]interface{} `yaml:"styles"`
	Annotations []Entry                  `yaml:"annotations"`
}

// Entry is one annotation. Which fields are read depends on Kind.
type Entry struct {
	Kind string `yaml:"kind"`

	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	X0        float64 `yaml:"x0"`
	X1        float64 `yaml:"x1"`
	Y0        float64 `yaml:"y0"`
	Y1        float64 `yaml:"y1"`
	Gradient  float64 `yaml:"gradient"`
	Intercept float64 `yaml:"intercept"`
	Text      string  `yaml:"text"`
	FontSize  float64 `yaml:"fontsize"`
	HAlign    string  `yaml:"halign"`
	VAlign    string  `yaml:"valign"`
	Rotation  float64 `yaml:"rotation"`
	Direction string  `yaml:"direction"`
	Points    float64 `yaml:"points"`
	Arrow     string  `yaml:"arrowstyle"`

	// Labels
	Xs     []interface{}            `yaml:"xs"`
	Ys     []interface{}            `yaml:"ys"`
	Texts  []string                 `yaml:"texts"`
	Dims   map[string][]interface{} `yaml:"dims"`
	Color  string                   `yaml:"color_by"`
	Offset [2]float64               `yaml:"offset"`

	// Spline
	Vertices [][2]float64 `yaml:"vertices"`
	Codes    []uint8      `yaml:"codes"`

	Style map[string]interface{} `yaml:"style"`
	Cycle int                    `yaml:"cycle"`
}

// LoadScene reads a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene and fills in defaults.
func ParseScene(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, fmt.Errorf("annotdemo: parse scene: %w", err)
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	if s.XLim == [2]float64{} {
		s.XLim = [2]float64{0, 1}
	}
	if s.YLim == [2]float64{} {
		s.YLim = [2]float64{0, 1}
	}
	return s, nil
}

// Spec converts the entry into an annotation.
func (e *Entry) Spec() (annotate.Spec, error) {
	kind, ok := annotate.ParseKind(e.Kind)
	if !ok {
		return annotate.Spec{}, fmt.Errorf("%w: %q", annotate.ErrUnknownKind, e.Kind)
	}
	var p annotate.Payload
	switch kind {
	case annotate.KindVLine:
		p = annotate.VLine{X: e.X}
	case annotate.KindHLine:
		p = annotate.HLine{Y: e.Y}
	case annotate.KindVSpan:
		p = annotate.VSpan{X0: e.X0, X1: e.X1}
	case annotate.KindHSpan:
		p = annotate.HSpan{Y0: e.Y0, Y1: e.Y1}
	case annotate.KindSlope:
		p = annotate.Slope{Gradient: e.Gradient, Intercept: e.Intercept}
	case annotate.KindText:
		p = annotate.Text{
			X: e.X, Y: e.Y, Text: e.Text, FontSize: e.FontSize,
			HAlign: e.HAlign, VAlign: e.VAlign, Rotation: e.Rotation,
		}
	case annotate.KindArrow:
		p = annotate.Arrow{
			X: e.X, Y: e.Y, Text: e.Text, Direction: e.Direction,
			Points: e.Points, ArrowStyle: e.Arrow,
		}
	case annotate.KindSpline:
		sp := annotate.Spline{}
		for _, v := range e.Vertices {
			sp.Vertices = append(sp.Vertices, canvas.Pt(v[0], v[1]))
		}
		for _, c := range e.Codes {
			sp.Codes = append(sp.Codes, annotate.PathCode(c))
		}
		p = sp
	case annotate.KindLabels:
		l, err := e.labels()
		if err != nil {
			return annotate.Spec{}, err
		}
		p = l
	}
	return annotate.Spec{Data: p}, nil
}

func (e *Entry) labels() (annotate.Labels, error) {
	xs, err := coords(e.Xs)
	if err != nil {
		return annotate.Labels{}, fmt.Errorf("annotdemo: xs: %w", err)
	}
	ys, err := coords(e.Ys)
	if err != nil {
		return annotate.Labels{}, fmt.Errorf("annotdemo: ys: %w", err)
	}
	l := annotate.Labels{X: xs, Y: ys, Text: e.Texts}
	for name, vals := range e.Dims {
		d := annotate.Dimension{Name: name}
		for _, v := range vals {
			switch v := v.(type) {
			case string:
				d.Categories = append(d.Categories, v)
			default:
				f, ok := number(v)
				if !ok {
					return annotate.Labels{}, fmt.Errorf("annotdemo: dim %s: unsupported value %v", name, v)
				}
				d.Values = append(d.Values, f)
			}
		}
		l.Dims = append(l.Dims, d)
	}
	return l, nil
}

// Options returns the plot options the entry asks for.
func (e *Entry) Options(invert bool) []annotate.Option {
	opts := []annotate.Option{
		annotate.WithInvertAxes(invert),
		annotate.WithCyclicIndex(e.Cycle),
	}
	if e.Color != "" {
		opts = append(opts, annotate.WithColorIndex(e.Color))
	}
	if e.Offset[0] != 0 {
		opts = append(opts, annotate.WithXOffset(e.Offset[0]))
	}
	if e.Offset[1] != 0 {
		opts = append(opts, annotate.WithYOffset(e.Offset[1]))
	}
	return opts
}

// Build draws every annotation of the scene onto a new recorder. Each
// annotation draws with its own style merged over its cycle entry.
func (s *Scene) Build() (*recording.Recorder, []*annotate.Plot, error) {
	rec := recording.NewRecorder(s.Width, s.Height, recording.WithLimits(s.XLim, s.YLim))

	host := &annotate.SimpleHost{Ranges: annotate.Ranges{}}
	for name, r := range s.Ranges {
		host.Ranges[name] = annotate.Range{Min: r[0], Max: r[1]}
	}
	for _, st := range s.Styles {
		host.Styles = append(host.Styles, toStyle(st))
	}

	plots := make([]*annotate.Plot, 0, len(s.Annotations))
	for i := range s.Annotations {
		e := &s.Annotations[i]
		spec, err := e.Spec()
		if err != nil {
			return nil, nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		p := annotate.NewPlot(host, rec, annotate.Key{i}, spec, e.Options(s.Invert)...)
		cfg := p.Initialize(nil)
		if len(e.Style) > 0 {
			style := host.Style(e.Cycle)
			for k, v := range toStyle(e.Style) {
				style[k] = v
			}
			p.Update(cfg.Key, nil, spec, cfg.Ranges, style)
		}
		plots = append(plots, p)
	}
	return rec, plots, nil
}

// toStyle converts a decoded YAML mapping to a style. Lists become []any
// so that vectorized label options keep working.
func toStyle(m map[string]interface{}) canvas.Style {
	s := make(canvas.Style, len(m))
	for k, v := range m {
		s[k] = normalize(v)
	}
	return s
}

func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case int:
		return float64(v)
	case []interface{}:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = normalize(x)
		}
		return out
	default:
		return v
	}
}

func coords(vals []interface{}) ([]canvas.Coord, error) {
	out := make([]canvas.Coord, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = canvas.Cat(s)
			continue
		}
		f, ok := number(v)
		if !ok {
			return nil, fmt.Errorf("unsupported coordinate %v", v)
		}
		out[i] = canvas.Num(f)
	}
	return out, nil
}

func number(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
