package jcamp

import (
	"strconv"
	"strings"
)

// DecodeDataBlockToAFFN re-expands a compressed data block into plain
// ##XYPOINTS=(XY..XY) text, one "x, y" line per point followed by ##END=.
// Values stay in the file's raw units and order so the header's XFACTOR and
// YFACTOR still apply. It returns false when the block is already readable
// or yields no points.
func DecodeDataBlockToAFFN(text string) (string, bool) {
	doc := ParseDocument(text)
	if doc.DataBlock == "" || !LooksCompressed(doc.DataBlock) {
		return "", false
	}
	points, _, _, _ := doc.decodeRaw()
	if len(points) == 0 {
		return "", false
	}

	newline := doc.Newline
	if newline == "" {
		newline = "\n"
	}
	var b strings.Builder
	b.WriteString("##XYPOINTS=(XY..XY)")
	b.WriteString(newline)
	for _, pt := range points {
		b.WriteString(formatValue(pt.x))
		b.WriteString(", ")
		b.WriteString(formatValue(pt.y))
		b.WriteString(newline)
	}
	b.WriteString("##END=")
	return b.String(), true
}

// ExpandToAFFN returns the whole file with its data block replaced by the
// output of DecodeDataBlockToAFFN.
func ExpandToAFFN(text string) (string, bool) {
	block, ok := DecodeDataBlockToAFFN(text)
	if !ok {
		return "", false
	}
	return ParseDocument(text).WithDataBlock(block).String(), true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}
