package canvas

import "github.com/vovakirdan/tui-worm/internal/core"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeLine
	OpFillCircle
	OpFillText
)

// Op is one recorded drawing operation with the style in effect when it ran.
// Lines use X, Y for the start and X2, Y2 for the end; circles use X, Y, R.
type Op struct {
	Kind      OpKind
	Color     core.Color
	X, Y      float64
	X2, Y2    float64
	W, H      float64
	R         float64
	LineWidth float64
	FontSize  float64
	Align     Align
	Baseline  Baseline
	Text      string
}

// Recorder is a Surface that keeps every drawing operation instead of
// rasterising it.
type Recorder struct {
	width, height      int
	displayW, displayH float64

	fill      core.Color
	stroke    core.Color
	lineWidth float64
	fontSize  float64
	align     Align
	baseline  Baseline

	ops []Op
}

// NewRecorder creates a recorder with the given buffer size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{
		width:     w,
		height:    h,
		displayW:  float64(w),
		displayH:  float64(h),
		lineWidth: 1,
		fontSize:  10,
	}
}

func (r *Recorder) Resize(w, h int) { r.width, r.height = w, h }
func (r *Recorder) SetDisplaySize(w, h float64) { r.displayW, r.displayH = w, h }
func (r *Recorder) Width() int { return r.width }
func (r *Recorder) Height() int { return r.height }
func (r *Recorder) DisplaySize() (float64, float64) { return r.displayW, r.displayH }
func (r *Recorder) Context() Context { return r }

func (r *Recorder) SetFillStyle(c core.Color) { r.fill = c }
func (r *Recorder) SetStrokeStyle(c core.Color) { r.stroke = c }
func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *Recorder) SetFont(size float64) { r.fontSize = size }
func (r *Recorder) SetTextAlign(a Align) { r.align = a }
func (r *Recorder) SetTextBaseline(b Baseline) { r.baseline = b }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Color: r.fill, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.ops = append(r.ops, Op{
		Kind: OpStrokeLine, Color: r.stroke, LineWidth: r.lineWidth,
		X: x0, Y: y0, X2: x1, Y2: y1,
	})
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Color: r.fill, X: x, Y: y, R: radius})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{
		Kind: OpFillText, Color: r.fill, X: x, Y: y, Text: text,
		FontSize: r.fontSize, Align: r.align, Baseline: r.baseline,
	})
}

// Ops returns every operation recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Filter returns the recorded operations of one kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets recorded operations; styles are kept.
func (r *Recorder) Reset() {
	r.ops = nil
}
