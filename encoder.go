package apng

import (
	"io"

	"go.uber.org/zap"
)

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Encoder) { e.logger = logger }
}

// writeOptions carries the per-call overrides WriteFrame and
// WriteDefaultImage accept (spec.md §6: "filter?, row_stride?").
type writeOptions struct {
	filter     *Filter
	rowStride  uint32
	hasRowOpts bool
}

// WriteOption configures a single WriteFrame or WriteDefaultImage call.
type WriteOption func(*writeOptions)

// WithFilter fixes the row filter for this call, bypassing inference.
func WithFilter(f Filter) WriteOption {
	return func(o *writeOptions) { o.filter = &f }
}

// WithRowStride overrides the stride between rows in the source buffer, for
// callers whose rows are padded past width*pixel_bytes.
func WithRowStride(stride uint32) WriteOption {
	return func(o *writeOptions) {
		o.rowStride = stride
		o.hasRowOpts = true
	}
}

// Encoder is a streaming, single-use APNG writer over a caller-owned sink.
// It is strictly single-threaded and synchronous: every operation commits its
// bytes to the sink before returning, per spec.md §5.
type Encoder struct {
	sink io.Writer
	meta Meta

	logger *zap.Logger

	sequence            uint32
	writtenFrames       uint32
	defaultImageWritten bool
	finished            bool
}

// Create validates meta, writes the signature, IHDR, and acTL chunks to sink,
// and returns a ready-to-use Encoder.
func Create(sink io.Writer, meta Meta, opts ...Option) (*Encoder, error) {
	if err := validateColor(meta.Color); err != nil {
		return nil, err
	}

	e := &Encoder{
		sink:   sink,
		meta:   meta,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := writeSignature(e.sink); err != nil {
		return nil, wrapIoError(err, "write signature")
	}
	if err := writeIHDR(e.sink, meta); err != nil {
		return nil, wrapIoError(err, "write IHDR")
	}
	if err := writeACTL(e.sink, meta); err != nil {
		return nil, wrapIoError(err, "write acTL")
	}

	e.logger.Debug("apng: created encoder",
		zap.Uint32("width", meta.Width),
		zap.Uint32("height", meta.Height),
		zap.Uint32("frames", meta.Frames),
	)
	return e, nil
}

func (e *Encoder) resolveWriteOptions(width uint32, opts []WriteOption) writeOptions {
	o := writeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasRowOpts || o.rowStride == 0 {
		o.rowStride = width * e.meta.Color.pixelBytes()
	}
	return o
}

// WriteDefaultImage emits a distinct default image — a still frame shown by
// decoders that do not understand APNG, covering the full canvas. It must be
// called before any WriteFrame call, and at most once.
func (e *Encoder) WriteDefaultImage(data []byte, opts ...WriteOption) error {
	if e.defaultImageWritten {
		return &MultipleDefaultImageError{}
	}
	if e.sequence != 0 {
		return &DefaultImageNotAtFirstError{}
	}

	r := rectangle{X: 0, Y: 0, Width: e.meta.Width, Height: e.meta.Height}
	o := e.resolveWriteOptions(r.Width, opts)

	if err := validateBufferSize(e.meta, r, len(data), o.rowStride); err != nil {
		return err
	}

	pixelBytes := e.meta.Color.pixelBytes()
	ft := e.resolveFilter(o, data, r.Width, r.Height, pixelBytes)

	zlibData, err := encodeScanlines(data, r.Width, r.Height, o.rowStride, pixelBytes, ft)
	if err != nil {
		return wrapIoError(err, "encode default image")
	}
	if err := writeIDAT(e.sink, zlibData); err != nil {
		return wrapIoError(err, "write IDAT")
	}

	e.defaultImageWritten = true
	e.logger.Debug("apng: wrote default image", zap.String("filter", filterName(ft)))
	return nil
}

// WriteFrame emits one animation frame. If no separate default image was
// written and this is the first accepted frame, it also serves as the
// default image (emitted as IDAT) and must cover the full canvas.
func (e *Encoder) WriteFrame(data []byte, frame Frame, opts ...WriteOption) error {
	if e.writtenFrames >= e.meta.Frames {
		return &TooManyFramesError{Declared: e.meta.Frames, Attempted: e.writtenFrames + 1}
	}

	r := resolveRectangle(e.meta, frame)

	// A first frame with no separate default image must cover the full
	// canvas or be rejected outright; that requirement is strictly
	// stronger than the generic in-bounds check below, so it takes
	// precedence on this path instead of stacking on top of it.
	firstFrameIsDefault := !e.defaultImageWritten && e.writtenFrames == 0
	if firstFrameIsDefault {
		if err := validateDefaultImageRectangle(r); err != nil {
			return err
		}
	} else if err := validateRectangle(e.meta, r); err != nil {
		return err
	}

	o := e.resolveWriteOptions(r.Width, opts)
	if err := validateBufferSize(e.meta, r, len(data), o.rowStride); err != nil {
		return err
	}

	pixelBytes := e.meta.Color.pixelBytes()
	ft := e.resolveFilter(o, data, r.Width, r.Height, pixelBytes)
	delay := resolveDelay(frame.Delay)

	if firstFrameIsDefault {
		seq := e.sequence
		e.sequence++
		if err := writeFCTL(e.sink, seq, r, delay, frame.Dispose, frame.Blend); err != nil {
			return wrapIoError(err, "write fcTL")
		}

		zlibData, err := encodeScanlines(data, r.Width, r.Height, o.rowStride, pixelBytes, ft)
		if err != nil {
			return wrapIoError(err, "encode frame")
		}
		if err := writeIDAT(e.sink, zlibData); err != nil {
			return wrapIoError(err, "write IDAT")
		}
	} else {
		fcSeq := e.sequence
		e.sequence++
		if err := writeFCTL(e.sink, fcSeq, r, delay, frame.Dispose, frame.Blend); err != nil {
			return wrapIoError(err, "write fcTL")
		}

		zlibData, err := encodeScanlines(data, r.Width, r.Height, o.rowStride, pixelBytes, ft)
		if err != nil {
			return wrapIoError(err, "encode frame")
		}
		fdSeq := e.sequence
		e.sequence++
		if err := writeFDAT(e.sink, fdSeq, zlibData); err != nil {
			return wrapIoError(err, "write fdAT")
		}
	}

	e.writtenFrames++
	e.logger.Debug("apng: wrote frame",
		zap.Uint32("index", e.writtenFrames-1),
		zap.String("filter", filterName(ft)),
		zap.Uint32("x", r.X), zap.Uint32("y", r.Y),
		zap.Uint32("width", r.Width), zap.Uint32("height", r.Height),
	)
	return nil
}

// Finish requires every declared frame to have been written, then emits
// IEND. The Encoder must not be used afterward. Calling Finish a second time
// is a safe no-op — there is no further state to flush.
func (e *Encoder) Finish() error {
	if e.finished {
		return nil
	}
	if e.writtenFrames != e.meta.Frames {
		return &NotEnoughFramesError{Declared: e.meta.Frames, Written: e.writtenFrames}
	}
	if err := writeIEND(e.sink); err != nil {
		return wrapIoError(err, "write IEND")
	}
	e.finished = true
	e.logger.Debug("apng: finished", zap.Uint32("frames", e.writtenFrames))
	return nil
}

// resolveFilter returns the caller-fixed filter, or infers one by sampling
// data when none was supplied.
func (e *Encoder) resolveFilter(o writeOptions, data []byte, width, height, pixelBytes uint32) Filter {
	if o.filter != nil {
		return *o.filter
	}
	return inferFilter(data, width, height, o.rowStride, pixelBytes)
}

func filterName(f Filter) string {
	switch f {
	case FilterNone:
		return "none"
	case FilterSub:
		return "sub"
	case FilterUp:
		return "up"
	case FilterAverage:
		return "average"
	case FilterPaeth:
		return "paeth"
	default:
		return "unknown"
	}
}
