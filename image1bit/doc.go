// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 stores its display RAM (GDDRAM) as horizontal "pages". Each page is
// 8 pixels high and one byte per column wide, so every byte holds a vertical run of
// 8 pixels with the least significant bit at the top.
//
// Memory layout example for the first page of a 4-pixel wide image:
//
//	Column:    0     1     2     3
//	Byte:      Pix[0] Pix[1] Pix[2] Pix[3]
//	Bit 0  →   y=0   y=0   y=0   y=0
//	Bit 1  →   y=1   y=1   y=1   y=1
//	...
//	Bit 7  →   y=7   y=7   y=7   y=7
//
// The second page (rows 8 to 15) starts at Pix[Stride].
//
// This package provides:
//
// - Bit: A color type representing a lit (On) or dark (Off) pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the SSD1306 page layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read it back
//	println(img.BitAt(10, 20)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
