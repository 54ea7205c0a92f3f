package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return Normalize(rect)
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left, right image.Rectangle) {
	rect = Normalize(rect)
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > rect.Dx() {
		leftWidthPx = rect.Dx()
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// Grid splits rect into cols x rows cells separated by gutterPx, returned in
// row-major order. Degenerate inputs yield an empty slice.
func Grid(rect image.Rectangle, cols, rows, gutterPx int) []image.Rectangle {
	rect = Normalize(rect)
	if cols <= 0 || rows <= 0 {
		return nil
	}
	if gutterPx < 0 {
		gutterPx = 0
	}
	cellW := (rect.Dx() - gutterPx*(cols-1)) / cols
	cellH := (rect.Dy() - gutterPx*(rows-1)) / rows
	if cellW <= 0 || cellH <= 0 {
		return nil
	}
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y := rect.Min.Y + row*(cellH+gutterPx)
		for col := 0; col < cols; col++ {
			x := rect.Min.X + col*(cellW+gutterPx)
			cells = append(cells, image.Rect(x, y, x+cellW, y+cellH))
		}
	}
	return cells
}
