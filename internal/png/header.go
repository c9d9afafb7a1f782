package png

// IHDR constants (PNG specification, 4.1.1).
const (
	compressionMethodDeflate = 0
	filterMethodAdaptive     = 0
	interlaceMethodNone      = 0

	filterTypeNone    = 0
	filterTypeSub     = 1
	filterTypeUp      = 2
	filterTypeAverage = 3
	filterTypePaeth   = 4
)

const maxDimension = 1<<31 - 1

// ImageHeader carries the parsed contents of the IHDR chunk.
type ImageHeader struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// BytesPerPixel derives the pixel stride from the color type's samples per
// pixel and the bit depth. Sub-byte depths truncate to zero, matching the
// raw-index passthrough for palette images.
func (h *ImageHeader) BytesPerPixel() int {
	samples := 1
	switch h.ColorType {
	case 2:
		samples = 3
	case 4:
		samples = 2
	case 6:
		samples = 4
	}
	return samples * int(h.BitDepth/8)
}

// ScanlineLength returns width times BytesPerPixel: the length of one
// unfiltered row in bytes at bit depths of 8 and 16. For bit depths below 8
// it is 0.
func (h *ImageHeader) ScanlineLength() int {
	return int(h.Width) * h.BytesPerPixel()
}

// validColorTypeBitDepth returns whether the (color type, bit depth) pair is
// one the standard allows.
func validColorTypeBitDepth(colorType, bitDepth uint8) bool {
	switch colorType {
	case 0:
		return bitDepth == 1 || bitDepth == 2 || bitDepth == 4 || bitDepth == 8 || bitDepth == 16
	case 3:
		return bitDepth == 1 || bitDepth == 2 || bitDepth == 4 || bitDepth == 8
	case 2, 4, 6:
		return bitDepth == 8 || bitDepth == 16
	}
	return false
}

// parseImageHeader reads and validates the 13-byte IHDR payload. The chunk
// CRC that follows is skipped, not verified.
func parseImageHeader(bs *byteStreamer) (*ImageHeader, error) {
	width, err := bs.readUint32()
	if err != nil {
		return nil, err
	}
	height, err := bs.readUint32()
	if err != nil {
		return nil, err
	}
	fields, err := bs.readBytes(5)
	if err != nil {
		return nil, err
	}
	hdr := &ImageHeader{
		Width:             width,
		Height:            height,
		BitDepth:          fields[0],
		ColorType:         fields[1],
		CompressionMethod: fields[2],
		FilterMethod:      fields[3],
		InterlaceMethod:   fields[4],
	}

	if hdr.Width > maxDimension {
		return nil, ErrInvalidWidth
	}
	if hdr.Height > maxDimension {
		return nil, ErrInvalidHeight
	}
	if !validColorTypeBitDepth(hdr.ColorType, hdr.BitDepth) {
		return nil, ErrInvalidColorTypeBitDepth
	}
	if hdr.CompressionMethod != compressionMethodDeflate {
		return nil, ErrUnsupportedCompressionMethod
	}
	if hdr.FilterMethod != filterMethodAdaptive {
		return nil, ErrUnsupportedFilterMethod
	}
	if hdr.InterlaceMethod != interlaceMethodNone {
		return nil, ErrUnsupportedInterlaceMethod
	}

	bs.skip(chunkCRCSize)
	return hdr, nil
}
