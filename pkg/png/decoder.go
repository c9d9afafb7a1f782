// Package png decodes PNG images into raw scanlines.
package png

import (
	"github.com/pkg/errors"

	"github.com/tjansen/gopng/internal/png"
)

// Header describes the decoded image, as parsed from the IHDR chunk.
type Header struct {
	// Width is the image width in pixels.
	Width uint32
	// Height is the image height in pixels.
	Height uint32
	// BitDepth is the number of bits per sample.
	BitDepth uint8
	// ColorType selects the sample layout (0 gray, 2 RGB, 3 palette,
	// 4 gray+alpha, 6 RGBA).
	ColorType uint8
	// InterlaceMethod is 0 for the supported non-interlaced layout.
	InterlaceMethod uint8
}

// BytesPerPixel returns the pixel stride of a raw scanline.
func (h Header) BytesPerPixel() int {
	hdr := png.ImageHeader{ColorType: h.ColorType, BitDepth: h.BitDepth}
	return hdr.BytesPerPixel()
}

// ScanlineLength returns width times BytesPerPixel: the length of one raw
// scanline in bytes at bit depths of 8 and 16. For bit depths below 8 it is 0.
func (h Header) ScanlineLength() int {
	return int(h.Width) * h.BytesPerPixel()
}

// HeaderFunc receives the image header before any rows are emitted.
type HeaderFunc func(hdr Header)

// RowFunc receives each raw scanline in top-to-bottom order. The row slice
// is reused between calls and must not be retained.
type RowFunc func(line int, row []byte)

// Decode parses a PNG byte sequence, invoking headerFn once after the header
// validates and rowFn once per reconstructed scanline. 8-bit palette images
// yield their raw index bytes. At bit depths below 8 the scanline length is
// 0, so rows come out empty or decoding fails with ErrUnsupportedFilterType.
func Decode(data []byte, headerFn HeaderFunc, rowFn RowFunc) error {
	if len(data) == 0 {
		return errors.New("png: empty source data")
	}
	var hf png.HeaderFunc
	if headerFn != nil {
		hf = func(hdr *png.ImageHeader) {
			headerFn(publicHeader(hdr))
		}
	}
	var rf png.RowFunc
	if rowFn != nil {
		rf = png.RowFunc(rowFn)
	} else {
		rf = func(int, []byte) {}
	}
	return png.Decode(data, hf, rf)
}

// Image is a fully decoded PNG: the header plus every raw scanline.
type Image struct {
	Header Header
	Rows   [][]byte
}

// DecodeImage decodes data and accumulates copies of every scanline.
func DecodeImage(data []byte) (*Image, error) {
	img := &Image{}
	err := Decode(data,
		func(hdr Header) {
			img.Header = hdr
			img.Rows = make([][]byte, 0, hdr.Height)
		},
		func(line int, row []byte) {
			img.Rows = append(img.Rows, append([]byte(nil), row...))
		})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func publicHeader(hdr *png.ImageHeader) Header {
	return Header{
		Width:           hdr.Width,
		Height:          hdr.Height,
		BitDepth:        hdr.BitDepth,
		ColorType:       hdr.ColorType,
		InterlaceMethod: hdr.InterlaceMethod,
	}
}
