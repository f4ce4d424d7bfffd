// Package gifseq reconstructs full opaque frames from GIF's
// patch-and-disposal encoding model.
//
// A GIF frame is a partial rectangle ("patch") drawn at an offset onto a
// shared logical canvas, followed by a disposal action that decides what
// the next frame draws on top of. Compositing is therefore a sequential
// state machine over two exclusively-owned buffers: the canvas and a
// snapshot kept for restore-to-previous.
package gifseq

import (
	"errors"
	"image"
)

// ErrEmptySequence is returned when there are no frames to composite.
var ErrEmptySequence = errors.New("gifseq: empty frame sequence")

// Disposal is the action applied to the canvas after a frame is shown.
type Disposal uint8

const (
	// DisposalKeep leaves the canvas as drawn (GIF disposal 0 and 1)
	// and snapshots it for a later DisposalPrevious.
	DisposalKeep Disposal = iota
	// DisposalBackground clears the frame's own rectangle to transparent.
	DisposalBackground
	// DisposalPrevious restores the canvas to the last Keep snapshot.
	DisposalPrevious
)

func (d Disposal) String() string {
	switch d {
	case DisposalBackground:
		return "background"
	case DisposalPrevious:
		return "previous"
	default:
		return "keep"
	}
}

// RawFrame is one decoded GIF patch: straight-alpha RGBA pixels plus
// placement and timing metadata. Immutable once decoded.
type RawFrame struct {
	Pix       []uint8 // RGBA, 4*W*H bytes, row-major
	W, H      int
	Left, Top int // patch offset on the logical canvas
	DelayMS   int
	Disposal  Disposal
}

// Frame is a full-canvas composited frame. Ownership passes to the
// caller; the compositor never touches it again.
type Frame struct {
	Image   *image.NRGBA
	DelayMS int
}

// DefaultDelayMS replaces zero/unspecified frame delays. Many encoders
// emit 0 meaning "as fast as possible"; normalizing to 100ms keeps such
// animations visible.
const DefaultDelayMS = 100

// CanvasSize returns the logical canvas dimensions covering every patch.
func CanvasSize(frames []RawFrame) (int, int) {
	var w, h int
	for _, f := range frames {
		if f.Left+f.W > w {
			w = f.Left + f.W
		}
		if f.Top+f.H > h {
			h = f.Top + f.H
		}
	}
	return w, h
}

// Composite replays the disposal state machine and returns one
// full-canvas frame per input patch, in order.
//
// Per frame: (1) alpha-composite the patch onto the canvas; (2) capture
// a copy of the canvas as output, normalizing a zero delay to
// DefaultDelayMS; (3) apply the frame's own disposal. The disposal of
// frame i happens strictly after frame i's capture and strictly before
// frame i+1's draw; each frame's pixels depend on the cumulative effect
// of every previous disposal, so no reordering is possible.
func Composite(frames []RawFrame, canvasW, canvasH int) ([]Frame, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	var snapshot []uint8 // last Keep state; nil until the first Keep

	out := make([]Frame, 0, len(frames))
	for _, f := range frames {
		drawPatch(canvas, f)

		captured := image.NewNRGBA(canvas.Rect)
		copy(captured.Pix, canvas.Pix)
		delay := f.DelayMS
		if delay <= 0 {
			delay = DefaultDelayMS
		}
		out = append(out, Frame{Image: captured, DelayMS: delay})

		switch f.Disposal {
		case DisposalBackground:
			clearRect(canvas, f.Left, f.Top, f.W, f.H)
		case DisposalPrevious:
			// Without a prior Keep snapshot this is a no-op: the
			// canvas keeps whatever state compositing left it in.
			if snapshot != nil {
				copy(canvas.Pix, snapshot)
			}
		default:
			if snapshot == nil {
				snapshot = make([]uint8, len(canvas.Pix))
			}
			copy(snapshot, canvas.Pix)
		}
	}
	return out, nil
}

// drawPatch alpha-composites a patch onto the canvas at its offset.
// Fully transparent patch pixels leave the canvas untouched (this is how
// GIF expresses "hole" pixels); opaque pixels overwrite; partial alpha
// blends straight-alpha over.
func drawPatch(canvas *image.NRGBA, f RawFrame) {
	cw := canvas.Rect.Dx()
	ch := canvas.Rect.Dy()
	for y := 0; y < f.H; y++ {
		cy := f.Top + y
		if cy < 0 || cy >= ch {
			continue
		}
		for x := 0; x < f.W; x++ {
			cx := f.Left + x
			if cx < 0 || cx >= cw {
				continue
			}
			si := (y*f.W + x) * 4
			sa := uint32(f.Pix[si+3])
			if sa == 0 {
				continue
			}
			di := canvas.PixOffset(cx, cy)
			if sa == 255 {
				copy(canvas.Pix[di:di+4], f.Pix[si:si+4])
				continue
			}
			blendOver(canvas.Pix[di:di+4], f.Pix[si:si+4], sa)
		}
	}
}

// blendOver composites src over dst, both straight-alpha RGBA.
func blendOver(dst, src []uint8, sa uint32) {
	da := uint32(dst[3])
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	for c := 0; c < 3; c++ {
		sc := uint32(src[c])
		dc := uint32(dst[c])
		dst[c] = uint8((sc*sa + dc*da*(255-sa)/255) / outA)
	}
	dst[3] = uint8(outA)
}

// clearRect zeroes exactly the given rectangle, clipped to the canvas.
func clearRect(canvas *image.NRGBA, left, top, w, h int) {
	cw := canvas.Rect.Dx()
	ch := canvas.Rect.Dy()
	for y := top; y < top+h; y++ {
		if y < 0 || y >= ch {
			continue
		}
		for x := left; x < left+w; x++ {
			if x < 0 || x >= cw {
				continue
			}
			i := canvas.PixOffset(x, y)
			canvas.Pix[i] = 0
			canvas.Pix[i+1] = 0
			canvas.Pix[i+2] = 0
			canvas.Pix[i+3] = 0
		}
	}
}
