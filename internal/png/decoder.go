package png

// HeaderFunc receives the validated image header before any rows are emitted.
type HeaderFunc func(hdr *ImageHeader)

// Decode parses a complete PNG byte sequence. headerFn is invoked once after
// IHDR validates; rowFn is invoked once per reconstructed scanline in
// top-to-bottom order. Rows emitted before an error remain valid, but no
// partial output is promised beyond them.
//
// Each IDAT chunk is treated as one self-contained ZLIB stream driven by the
// chunk's length. Chunk CRCs are read and skipped, not verified.
func Decode(data []byte, headerFn HeaderFunc, rowFn RowFunc) error {
	bs := newByteStreamer(data)

	sig, err := bs.readBytes(len(pngSignature))
	if err != nil {
		return err
	}
	for i, b := range sig {
		if b != pngSignature[i] {
			return ErrBadSignature
		}
	}

	first, err := readChunkHeader(bs)
	if err != nil {
		return err
	}
	if first.typ != chunkIHDR {
		return ErrInvalidFirstChunk
	}
	hdr, err := parseImageHeader(bs)
	if err != nil {
		return err
	}
	if headerFn != nil {
		headerFn(hdr)
	}

	// Image data may be scattered over multiple IDAT chunks and need not be
	// split per scanline; the reconstructor carries state across them.
	sr := NewScanlineReconstructor(hdr, rowFn)

	for !bs.eof() {
		c, err := readChunkHeader(bs)
		if err != nil {
			return err
		}
		switch {
		case c.typ == chunkIHDR:
			return ErrMultipleIHDR
		case c.typ == chunkIDAT:
			payload, err := bs.readBytes(int(c.length))
			if err != nil {
				return err
			}
			if err := ZlibDecompress(payload, sr.Process); err != nil {
				return &zlibStreamError{cause: err}
			}
			if err := sr.Err(); err != nil {
				return err
			}
			bs.skip(chunkCRCSize)
		case c.typ == chunkIEND:
			bs.skip(chunkCRCSize)
			return nil
		case !c.typ.IsAncillary():
			return ErrUnsupportedCriticalChunk
		default:
			c.skipPayload(bs)
		}
	}
	return nil
}
