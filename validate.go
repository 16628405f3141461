package apng

// validateColor enforces spec.md §4.5's color legality table.
func validateColor(c Color) error {
	if !c.valid() {
		return &InvalidColorError{Color: c}
	}
	return nil
}

// validateRectangle enforces spec.md §4.5's rectangle-legality rule:
// x+width <= Meta.Width and y+height <= Meta.Height.
func validateRectangle(meta Meta, r rectangle) error {
	if r.X+r.Width > meta.Width || r.Y+r.Height > meta.Height {
		return &TooLargeImageError{Width: meta.Width, Height: meta.Height}
	}
	return nil
}

// validateBufferSize enforces spec.md §4.5's implied-row-count rule: the data
// height (buffer length / row stride) must be at least the rectangle height
// and must not exceed the rectangle's bottom edge (y+height).
func validateBufferSize(meta Meta, r rectangle, dataLen int, rowStride uint32) error {
	dataHeight := uint32(dataLen) / rowStride
	if dataHeight < r.Height {
		return &TooSmallImageError{Width: r.Width, Height: r.Height}
	}
	if dataHeight > r.Y+r.Height {
		return &TooLargeImageError{Width: meta.Width, Height: meta.Height}
	}
	return nil
}

// validateDefaultImageRectangle enforces spec.md §4.5: when no separate
// default image has been written and the first WriteFrame is invoked, the
// rectangle must be unmodified (full canvas).
func validateDefaultImageRectangle(r rectangle) error {
	if r.modified {
		return &InvalidDefaultImageRectangleError{}
	}
	return nil
}
