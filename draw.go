package ssd1306

// clamp limits v to [0, n-1].
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included.
//
// Endpoints outside the display are clamped to the nearest edge, so the line is
// bent towards the border rather than clipped.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c Color) {
	w, h := d.rect.Dx(), d.rect.Dy()
	x0, x1 = clamp(x0, w), clamp(x1, w)
	y0, y1 = clamp(y0, h), clamp(y1, h)

	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	// Axis aligned lines are drawn as plain runs
	if dx == 0 || dy == 0 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if dx == 0 {
			for y := y0; y <= y1; y++ {
				d.SetPixel(x0, y, c)
			}
		} else {
			for x := x0; x <= x1; x++ {
				d.SetPixel(x, y0, c)
			}
		}
		return
	}

	// Bresenham
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// clipRect rejects rectangles whose origin is outside the display and trims the
// extent of the others so that x+w and y+h stay on screen.
func (d *Dev) clipRect(x, y, w, h int) (int, int, bool) {
	dw, dh := d.rect.Dx(), d.rect.Dy()
	if x < 0 || y < 0 || x >= dw || y >= dh || w < 0 || h < 0 {
		return 0, 0, false
	}
	if x+w >= dw {
		w = dw - x
	}
	if y+h >= dh {
		h = dh - y
	}
	return w, h, true
}

// DrawRect draws the outline of the rectangle with corners (x, y) and
// (x+w, y+h). Nothing is drawn when (x, y) is off screen.
func (d *Dev) DrawRect(x, y, w, h int, c Color) {
	w, h, ok := d.clipRect(x, y, w, h)
	if !ok {
		return
	}
	d.DrawLine(x, y, x+w, y, c)     // Top
	d.DrawLine(x, y+h, x+w, y+h, c) // Bottom
	d.DrawLine(x, y, x, y+h, c)     // Left
	d.DrawLine(x+w, y, x+w, y+h, c) // Right
}

// DrawFilledRect fills the rectangle with corners (x, y) and (x+w, y+h), both
// included. Nothing is drawn when (x, y) is off screen.
func (d *Dev) DrawFilledRect(x, y, w, h int, c Color) {
	w, h, ok := d.clipRect(x, y, w, h)
	if !ok {
		return
	}
	for i := 0; i <= h; i++ {
		d.DrawLine(x, y+i, x+w, y+i, c)
	}
}

// DrawTriangle draws the outline of the triangle (x1, y1), (x2, y2), (x3, y3).
func (d *Dev) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c Color) {
	d.DrawLine(x1, y1, x2, y2, c)
	d.DrawLine(x2, y2, x3, y3, c)
	d.DrawLine(x3, y3, x1, y1, c)
}

// DrawFilledTriangle fills the triangle (x1, y1), (x2, y2), (x3, y3).
//
// A point walks the edge from the first to the second vertex with a DDA and a
// line is drawn from each of its positions to the third vertex.
func (d *Dev) DrawFilledTriangle(x1, y1, x2, y2, x3, y3 int, c Color) {
	deltax, deltay := abs(x2-x1), abs(y2-y1)
	x, y := x1, y1

	xinc1, xinc2 := 1, 1
	if x2 < x1 {
		xinc1, xinc2 = -1, -1
	}
	yinc1, yinc2 := 1, 1
	if y2 < y1 {
		yinc1, yinc2 = -1, -1
	}

	var den, num, numadd, numpixels int
	if deltax >= deltay {
		xinc1, yinc2 = 0, 0
		den, num, numadd, numpixels = deltax, deltax/2, deltay, deltax
	} else {
		xinc2, yinc1 = 0, 0
		den, num, numadd, numpixels = deltay, deltay/2, deltax, deltay
	}

	for i := 0; i <= numpixels; i++ {
		d.DrawLine(x, y, x3, y3, c)

		num += numadd
		if num >= den {
			num -= den
			x += xinc1
			y += yinc1
		}
		x += xinc2
		y += yinc2
	}
}

// DrawCircle draws the outline of the circle of radius r centered at (x0, y0)
// using the midpoint algorithm. Pixels falling off screen are dropped.
func (d *Dev) DrawCircle(x0, y0, r int, c Color) {
	f := 1 - r
	ddFx, ddFy := 1, -2*r
	x, y := 0, r

	d.SetPixel(x0, y0+r, c)
	d.SetPixel(x0, y0-r, c)
	d.SetPixel(x0+r, y0, c)
	d.SetPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.SetPixel(x0+x, y0+y, c)
		d.SetPixel(x0-x, y0+y, c)
		d.SetPixel(x0+x, y0-y, c)
		d.SetPixel(x0-x, y0-y, c)

		d.SetPixel(x0+y, y0+x, c)
		d.SetPixel(x0-y, y0+x, c)
		d.SetPixel(x0+y, y0-x, c)
		d.SetPixel(x0-y, y0-x, c)
	}
}

// DrawFilledCircle fills the circle of radius r centered at (x0, y0) with
// horizontal spans.
//
// Spans reaching past the display are clamped by DrawLine.
func (d *Dev) DrawFilledCircle(x0, y0, r int, c Color) {
	f := 1 - r
	ddFx, ddFy := 1, -2*r
	x, y := 0, r

	d.SetPixel(x0, y0+r, c)
	d.SetPixel(x0, y0-r, c)
	d.SetPixel(x0+r, y0, c)
	d.SetPixel(x0-r, y0, c)
	d.DrawLine(x0-r, y0, x0+r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.DrawLine(x0-x, y0+y, x0+x, y0+y, c)
		d.DrawLine(x0+x, y0-y, x0-x, y0-y, c)

		d.DrawLine(x0+y, y0+x, x0-y, y0+x, c)
		d.DrawLine(x0+y, y0-x, x0-y, y0-x, c)
	}
}

// DrawBitmap draws a w x h 1-bit bitmap with its top left corner at (x, y).
//
// Rows are padded to whole bytes, most significant bit first. A set bit is drawn
// with the complement of c and a clear bit with c, so assets authored with
// 1 = background render with c as foreground.
//
// ErrBitmapSize is returned, and nothing drawn, when bitmap holds fewer than
// h rows.
func (d *Dev) DrawBitmap(x, y int, bitmap []byte, w, h int, c Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	stride := (w + 7) / 8
	if len(bitmap) < stride*h {
		return ErrBitmapSize
	}

	for j := 0; j < h; j++ {
		row := bitmap[j*stride : (j+1)*stride]
		for i := 0; i < w; i++ {
			if row[i/8]&(0x80>>uint(i&7)) != 0 {
				d.SetPixel(x+i, y+j, !c)
			} else {
				d.SetPixel(x+i, y+j, c)
			}
		}
	}
	return nil
}
