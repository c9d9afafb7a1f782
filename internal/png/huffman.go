package png

// maxCodeBits is the longest code length DEFLATE permits.
const maxCodeBits = 15

// treeNode is one entry of a canonical Huffman table: the symbol, the number
// of bits assigned to it, and the numeric code value. Length 0 means the
// symbol is absent from the code space.
type treeNode struct {
	symbol int
	length int
	code   uint32
}

// HuffmanTree holds a canonical Huffman code table. minBits and maxBits are
// the smallest and largest nonzero code length present; a tree with no
// present symbols keeps the out-of-range sentinels and decodes nothing.
type HuffmanTree struct {
	nodes   []treeNode
	minBits int
	maxBits int
}

// BuildCodeTree constructs the unique canonical Huffman tree for the given
// code lengths, where lengths[i] is the code length of symbol i and 0 marks
// an absent symbol. Codes of equal length are assigned consecutive values in
// ascending symbol order (RFC 1951, 3.2.2).
func BuildCodeTree(lengths []int) *HuffmanTree {
	// The sentinels survive when every length is 0: DecodeSymbol then
	// cannot match an absent zero-valued node and fails on the bitstream
	// instead of spinning.
	var blCount [maxCodeBits + 1]int
	minBits, maxBits := maxCodeBits+1, -1
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		blCount[l]++
		if l < minBits {
			minBits = l
		}
		if l > maxBits {
			maxBits = l
		}
	}

	var nextCode [maxCodeBits + 1]uint32
	code := uint32(0)
	for bits := 1; bits <= maxCodeBits; bits++ {
		code = (code + uint32(blCount[bits-1])) << 1
		nextCode[bits] = code
	}

	tree := &HuffmanTree{
		nodes:   make([]treeNode, len(lengths)),
		minBits: minBits,
		maxBits: maxBits,
	}
	for i, l := range lengths {
		tree.nodes[i].symbol = i
		if l != 0 {
			tree.nodes[i].length = l
			tree.nodes[i].code = nextCode[l] & (1<<uint(l) - 1)
			nextCode[l]++
		}
	}
	return tree
}

// DecodeSymbol reads Huffman bits from br until they match an entry of the
// tree and returns its symbol. The scan widens one bit at a time from minBits
// to maxBits; a read starting with minBits ensures at most maxBits-minBits
// extra single-bit reads. Trees hold at most 288 entries, so the linear scan
// per width is acceptable.
func (t *HuffmanTree) DecodeSymbol(br *BitReader) (int, error) {
	curBits := t.minBits
	curCode, err := br.ReadHuffmanBits(uint(curBits))
	if err != nil {
		return 0, err
	}
	for {
		for _, n := range t.nodes {
			if n.length == curBits && n.code == curCode {
				return n.symbol, nil
			}
		}
		if curBits >= t.maxBits {
			return 0, ErrCorruptSymbol
		}
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		curCode = curCode<<1 | bit
		curBits++
	}
}

// Fixed trees for block type 1 (RFC 1951, 3.2.6).
var (
	fixedLengthTree   = buildFixedLengthTree()
	fixedDistanceTree = buildFixedDistanceTree()
)

func buildFixedLengthTree() *HuffmanTree {
	lengths := make([]int, 288)
	for n := 0; n <= 143; n++ {
		lengths[n] = 8
	}
	for n := 144; n <= 255; n++ {
		lengths[n] = 9
	}
	for n := 256; n <= 279; n++ {
		lengths[n] = 7
	}
	for n := 280; n <= 287; n++ {
		lengths[n] = 8
	}
	return BuildCodeTree(lengths)
}

func buildFixedDistanceTree() *HuffmanTree {
	lengths := make([]int, 30)
	for n := range lengths {
		lengths[n] = 5
	}
	return BuildCodeTree(lengths)
}
