// Package bmp writes uncompressed Windows bitmaps. Structures follow MSDN,
// https://docs.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfo
package bmp

import (
	"io"

	"github.com/pkg/errors"
)

// ErrInvalidBitsPerPixel is returned for pixel formats other than 24 or 32 bpp.
var ErrInvalidBitsPerPixel = errors.New("bmp: invalid bits per pixel")

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// Write encodes data as a BMP stream on w. data holds top-down (A)RGB pixels,
// one R,G,B(,A) byte group per pixel; BMP stores rows bottom-up in (A)BGR
// order with each row padded to a 4-byte boundary.
func Write(w io.Writer, data []byte, width, height, bitsPerPixel int) error {
	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return ErrInvalidBitsPerPixel
	}
	bytesPP := bitsPerPixel / 8

	rowLength := width * bytesPP
	for rowLength%4 != 0 {
		rowLength++
	}

	buf := make([]byte, 0, fileHeaderSize+infoHeaderSize+height*rowLength)

	// BITMAPFILEHEADER
	buf = append(buf, 0x42, 0x4d) // 'BM' identifier
	buf = put32(buf, uint32(fileHeaderSize+infoHeaderSize+height*rowLength))
	buf = put32(buf, 0)                             // reserved
	buf = put32(buf, fileHeaderSize+infoHeaderSize) // offset of bitmap data
	// BITMAPINFOHEADER
	buf = put32(buf, infoHeaderSize)
	buf = put32(buf, uint32(width))
	buf = put32(buf, uint32(height))
	buf = put16(buf, 1) // planes
	buf = put16(buf, uint16(bitsPerPixel))
	buf = put32(buf, 0) // compression (BI_RGB)
	buf = put32(buf, 0) // image size, in bytes (0 for BI_RGB)
	buf = put32(buf, 0) // horizontal resolution (pixels-per-meter)
	buf = put32(buf, 0) // vertical resolution (pixels-per-meter)
	buf = put32(buf, 0) // number of colours used (0 = all)
	buf = put32(buf, 0) // number of colour indices used (0 = all)

	// Pixel rows, last scanline first.
	for y := height - 1; y >= 0; y-- {
		row := data[y*width*bytesPP:]
		for x := 0; x < width; x++ {
			p := row[x*bytesPP:]
			buf = append(buf, p[2], p[1], p[0]) // RGB -> BGR
			if bytesPP == 4 {
				buf = append(buf, p[3])
			}
		}
		for written := width * bytesPP; written%4 != 0; written++ {
			buf = append(buf, 0)
		}
	}

	_, err := w.Write(buf)
	return errors.Wrap(err, "bmp: write")
}

func put16(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}

func put32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
