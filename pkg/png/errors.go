package png

import (
	"github.com/tjansen/gopng/internal/png"
)

// Error kinds surfaced by Decode. Match with errors.Is; ErrZlib matches any
// failure inside the compressed image data, with the specific ZLIB or
// DEFLATE cause further down the chain.
var (
	ErrPrematureEndOfFile           = png.ErrPrematureEndOfFile
	ErrBadSignature                 = png.ErrBadSignature
	ErrInvalidFirstChunk            = png.ErrInvalidFirstChunk
	ErrMultipleIHDR                 = png.ErrMultipleIHDR
	ErrUnsupportedCriticalChunk     = png.ErrUnsupportedCriticalChunk
	ErrInvalidWidth                 = png.ErrInvalidWidth
	ErrInvalidHeight                = png.ErrInvalidHeight
	ErrInvalidColorTypeBitDepth     = png.ErrInvalidColorTypeBitDepth
	ErrUnsupportedCompressionMethod = png.ErrUnsupportedCompressionMethod
	ErrUnsupportedFilterMethod      = png.ErrUnsupportedFilterMethod
	ErrUnsupportedInterlaceMethod   = png.ErrUnsupportedInterlaceMethod
	ErrUnsupportedFilterType        = png.ErrUnsupportedFilterType
	ErrZlib                         = png.ErrZlib
)
