package png

const (
	symbolEndOfBlock  = 256
	symbolRepeatFirst = 257
	symbolRepeatLast  = 285
)

// Base lengths and extra bit counts for the length symbols 257..285
// (RFC 1951, 3.2.5).
var (
	repeatOffsetBase = [...]int{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
		35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
	repeatExtraBits = [...]uint{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
)

// Base distances and extra bit counts for the distance symbols 0..29.
var (
	distBase = [...]int{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
		257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
	}
	distExtraBits = [...]uint{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
		7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
)

// codeLengthOrder is the permutation in which the code-length alphabet's own
// code lengths appear in a dynamic block header.
var codeLengthOrder = [...]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// inflater tracks the decompressed output of one DEFLATE stream. The whole
// stream is kept so back-references can reach across block boundaries; legal
// distances never exceed 32768 bytes but the history is the simplest structure
// that satisfies every one of them.
type inflater struct {
	br      *BitReader
	history []byte
	emit    func([]byte)
}

// Inflate decompresses the DEFLATE stream read from br. Each block's output
// is passed to emit as one fragment, in emission order; the fragment slice is
// only valid for the duration of the call.
func Inflate(br *BitReader, emit func([]byte)) error {
	inf := &inflater{br: br, emit: emit}
	for {
		bfinal, err := br.ReadDataBits(1)
		if err != nil {
			return err
		}
		btype, err := br.ReadDataBits(2)
		if err != nil {
			return err
		}

		blockStart := len(inf.history)
		switch btype {
		case 0:
			if err := inf.storedBlock(); err != nil {
				return err
			}
		case 1:
			if err := inf.compressedBlock(fixedLengthTree, fixedDistanceTree); err != nil {
				return err
			}
		case 2:
			lenTree, distTree, err := inf.dynamicTrees()
			if err != nil {
				return err
			}
			if err := inf.compressedBlock(lenTree, distTree); err != nil {
				return err
			}
		case 3:
			return ErrInvalidBlockType
		}
		inf.emit(inf.history[blockStart:])

		if bfinal != 0 {
			return nil
		}
	}
}

// storedBlock copies LEN raw bytes after validating the ones-complement
// length pair (RFC 1951, 3.2.4).
func (inf *inflater) storedBlock() error {
	inf.br.AlignToByte()
	length, err := inf.readUint16()
	if err != nil {
		return err
	}
	nlength, err := inf.readUint16()
	if err != nil {
		return err
	}
	if length^0xffff != nlength {
		return ErrLengthCorrupt
	}
	for n := 0; n < int(length); n++ {
		b, err := inf.br.ReadDataBits(8)
		if err != nil {
			return err
		}
		inf.history = append(inf.history, byte(b))
	}
	return nil
}

func (inf *inflater) readUint16() (uint32, error) {
	lo, err := inf.br.ReadDataBits(8)
	if err != nil {
		return 0, err
	}
	hi, err := inf.br.ReadDataBits(8)
	if err != nil {
		return 0, err
	}
	return lo | hi<<8, nil
}

// compressedBlock runs the literal/back-reference symbol loop until the
// end-of-block symbol.
func (inf *inflater) compressedBlock(lenTree, distTree *HuffmanTree) error {
	for {
		symbol, err := lenTree.DecodeSymbol(inf.br)
		if err != nil {
			return err
		}
		switch {
		case symbol == symbolEndOfBlock:
			return nil
		case symbol >= 0 && symbol <= 255:
			inf.history = append(inf.history, byte(symbol))
		case symbol >= symbolRepeatFirst && symbol <= symbolRepeatLast:
			if err := inf.backReference(symbol, distTree); err != nil {
				return err
			}
		default:
			return ErrInvalidSymbol
		}
	}
}

// backReference decodes a length/distance pair and copies from the history.
// The copy runs byte by byte so self-overlapping references (distance shorter
// than length) replicate their own output.
func (inf *inflater) backReference(symbol int, distTree *HuffmanTree) error {
	n := symbol - symbolRepeatFirst
	extra, err := inf.br.ReadDataBits(repeatExtraBits[n])
	if err != nil {
		return err
	}
	length := repeatOffsetBase[n] + int(extra)

	distSymbol, err := distTree.DecodeSymbol(inf.br)
	if err != nil {
		return err
	}
	if distSymbol >= len(distBase) {
		return ErrInvalidSymbol
	}
	extra, err = inf.br.ReadDataBits(distExtraBits[distSymbol])
	if err != nil {
		return err
	}
	dist := distBase[distSymbol] + int(extra)

	if dist > len(inf.history) {
		return ErrCorruptDistance
	}
	pos := len(inf.history) - dist
	for i := 0; i < length; i++ {
		inf.history = append(inf.history, inf.history[pos])
		pos++
	}
	return nil
}

// dynamicTrees reads a dynamic block header (RFC 1951, 3.2.7): the
// code-length alphabet tree first, then the run-length-compressed code
// lengths of the literal/length and distance trees.
func (inf *inflater) dynamicTrees() (lenTree, distTree *HuffmanTree, err error) {
	v, err := inf.br.ReadDataBits(5)
	if err != nil {
		return nil, nil, err
	}
	hlit := int(v) + 257
	v, err = inf.br.ReadDataBits(5)
	if err != nil {
		return nil, nil, err
	}
	hdist := int(v) + 1
	v, err = inf.br.ReadDataBits(4)
	if err != nil {
		return nil, nil, err
	}
	hclen := int(v) + 4

	codeLengths := make([]int, len(codeLengthOrder))
	for n := 0; n < hclen; n++ {
		cl, err := inf.br.ReadDataBits(3)
		if err != nil {
			return nil, nil, err
		}
		codeLengths[codeLengthOrder[n]] = int(cl)
	}
	codeTree := BuildCodeTree(codeLengths)

	lengths := make([]int, 0, hlit+hdist)
	for len(lengths) < hlit+hdist {
		symbol, err := codeTree.DecodeSymbol(inf.br)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case symbol >= 0 && symbol <= 15:
			lengths = append(lengths, symbol)
		case symbol == 16:
			if len(lengths) == 0 {
				return nil, nil, ErrInvalidDynamicReference
			}
			prev := lengths[len(lengths)-1]
			repeat, err := inf.br.ReadDataBits(2)
			if err != nil {
				return nil, nil, err
			}
			for n := 0; n < int(repeat)+3; n++ {
				lengths = append(lengths, prev)
			}
		case symbol == 17:
			repeat, err := inf.br.ReadDataBits(3)
			if err != nil {
				return nil, nil, err
			}
			for n := 0; n < int(repeat)+3; n++ {
				lengths = append(lengths, 0)
			}
		case symbol == 18:
			repeat, err := inf.br.ReadDataBits(7)
			if err != nil {
				return nil, nil, err
			}
			for n := 0; n < int(repeat)+11; n++ {
				lengths = append(lengths, 0)
			}
		}
	}

	return BuildCodeTree(lengths[:hlit]), BuildCodeTree(lengths[hlit:]), nil
}
