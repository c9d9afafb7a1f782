package png

import (
	"github.com/pkg/errors"
)

// DEFLATE layer failures.
var (
	// ErrEndOfStream is returned when a bit or byte read runs past the end
	// of the compressed data.
	ErrEndOfStream = errors.New("deflate: end of stream")
	// ErrLengthCorrupt marks a stored block whose LEN and NLEN fields disagree.
	ErrLengthCorrupt = errors.New("deflate: stored block length corrupt")
	// ErrInvalidBlockType marks the reserved block type 3.
	ErrInvalidBlockType = errors.New("deflate: invalid block type")
	// ErrCorruptSymbol is returned when no Huffman code matches within max_bits.
	ErrCorruptSymbol = errors.New("deflate: corrupt symbol")
	// ErrInvalidSymbol marks a literal/length or distance symbol outside the
	// defined alphabet.
	ErrInvalidSymbol = errors.New("deflate: invalid symbol")
	// ErrInvalidDynamicReference marks a repeat-previous code length with no previous.
	ErrInvalidDynamicReference = errors.New("deflate: dynamic tree references missing code length")
	// ErrCorruptDistance marks a back-reference pointing before the start of output.
	ErrCorruptDistance = errors.New("deflate: corrupt distance")
)

// ZLIB layer failures.
var (
	// ErrZlibTruncated is returned when the ZLIB stream is too short to hold
	// its header, dictionary id, and trailer. A DEFLATE payload that ends
	// early is reported as ErrEndOfStream instead.
	ErrZlibTruncated = errors.New("zlib: premature end of stream")
	// ErrZlibMethod marks a compression method other than 8 (deflate).
	ErrZlibMethod = errors.New("zlib: unsupported compression method")
	// ErrZlibHeaderChecksum marks a CMF/FLG pair that is not a multiple of 31.
	ErrZlibHeaderChecksum = errors.New("zlib: header checksum error")
	// ErrZlibChecksum marks an Adler-32 trailer mismatch.
	ErrZlibChecksum = errors.New("zlib: checksum error")
)

// PNG layer failures.
var (
	// ErrPrematureEndOfFile is returned for any read past the end of the
	// input at the chunk framing layer.
	ErrPrematureEndOfFile = errors.New("png: premature end of file")
	// ErrBadSignature marks input that does not begin with the PNG signature.
	ErrBadSignature = errors.New("png: bad signature")
	// ErrInvalidFirstChunk is returned when the first chunk is not IHDR.
	ErrInvalidFirstChunk = errors.New("png: first chunk is not IHDR")
	// ErrMultipleIHDR is returned when a second IHDR chunk is encountered.
	ErrMultipleIHDR = errors.New("png: multiple IHDR chunks")
	// ErrUnsupportedCriticalChunk marks an unrecognised critical chunk.
	ErrUnsupportedCriticalChunk = errors.New("png: unsupported critical chunk encountered")
	// ErrInvalidWidth marks a width above 2^31-1.
	ErrInvalidWidth = errors.New("png: invalid width")
	// ErrInvalidHeight marks a height above 2^31-1.
	ErrInvalidHeight = errors.New("png: invalid height")
	// ErrInvalidColorTypeBitDepth marks a (color type, bit depth) pair
	// outside the combinations the standard allows.
	ErrInvalidColorTypeBitDepth = errors.New("png: invalid color type and bit depth combination")
	// ErrUnsupportedCompressionMethod marks an IHDR compression method other than 0.
	ErrUnsupportedCompressionMethod = errors.New("png: unsupported compression method")
	// ErrUnsupportedFilterMethod marks an IHDR filter method other than 0.
	ErrUnsupportedFilterMethod = errors.New("png: unsupported filter method")
	// ErrUnsupportedInterlaceMethod marks an IHDR interlace method other than 0.
	ErrUnsupportedInterlaceMethod = errors.New("png: unsupported interlace method")
	// ErrUnsupportedFilterType marks a scanline filter type outside 0..4.
	ErrUnsupportedFilterType = errors.New("png: unsupported filter type")
	// ErrZlib is the generic kind for any ZLIB layer failure inside the
	// image data. Errors returned by Decode match it via errors.Is while
	// the specific ZLIB or DEFLATE cause remains in the chain.
	ErrZlib = errors.New("png: zlib error")
)

// zlibStreamError tags a ZLIB layer failure so callers can match either the
// generic ErrZlib kind or the underlying cause.
type zlibStreamError struct {
	cause error
}

func (e *zlibStreamError) Error() string {
	return "png: zlib stream: " + e.cause.Error()
}

func (e *zlibStreamError) Unwrap() error { return e.cause }

func (e *zlibStreamError) Is(target error) bool { return target == ErrZlib }
