package ley

import (
	"strings"
	"unicode"
)

// Block is one named, typed unit of ley markup:
//
//	!name: structure [text]
//	!name: structure { !child: s [x] }
//
// Name, Structure and text content are substrings of the parsed source.
type Block struct {
	// Name is the text between the opening '!' run and the closing ':' run.
	Name string

	// Structure names the handler that interprets Content. It is trimmed of
	// surrounding whitespace and never interpreted by the parser.
	Structure string

	// Content is the block body.
	Content Content

	// NameSpan, StructureSpan and Span locate the name, the structure token and
	// the whole block in the source.
	NameSpan      Span
	StructureSpan Span
	Span          Span

	// Fence is the width of the '!' run that opened the block.
	Fence int
}

// IsNested reports whether the block holds child blocks rather than text.
func (b *Block) IsNested() bool {
	return b.Content.Kind == ContentNested
}

// Children returns the nested blocks, or nil for text content.
func (b *Block) Children() []*Block {
	return b.Content.Blocks
}

// scanBlock parses one block starting at a '!' run. depth is the number of
// nested contents enclosing the block. The boolean result is false when the
// block was a comment: the cursor has moved past it but no Block is returned.
func scanBlock(c *Cursor, depth int) (*Block, bool, error) {
	start := c.Offset()

	fence := MeasureRun(c.Rest(), nameOpen)
	if fence == 0 {
		return nil, false, invalidFence(c, "expected one or more %q to open a block name", nameOpen)
	}
	c.Advance(fence)

	nameLen, comment, ok := scanNameTerminator(c.Rest(), fence)
	if !ok {
		return nil, false, unexpectedEOF(c, "expected %d %q or %q to close the block name", fence, nameClose, commentClose)
	}
	name, nameSpan := c.Take(nameLen)
	c.Advance(fence)

	idx := strings.IndexAny(c.Rest(), "{[")
	if idx < 0 {
		return nil, false, unexpectedEOF(c, "expected %q or %q after the structure name of %q", nestedOpen, textOpen, name)
	}
	raw, rawSpan := c.Take(idx)
	lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
	structure := strings.TrimFunc(raw, unicode.IsSpace)
	structureSpan := Span{Start: rawSpan.Start + lead, End: rawSpan.Start + lead + len(structure)}

	content, err := scanContent(c, depth)
	if err != nil {
		return nil, false, err
	}

	if comment {
		return nil, false, nil
	}

	return &Block{
		Name:          name,
		Structure:     structure,
		Content:       content,
		NameSpan:      nameSpan,
		StructureSpan: structureSpan,
		Span:          Span{Start: start, End: c.Offset()},
		Fence:         fence,
	}, true, nil
}

// scanNameTerminator finds the first position in s where fence consecutive
// ':' or ';' bytes have been seen. It returns the length of the name before
// that run and whether the run was made of ';'.
func scanNameTerminator(s string, fence int) (int, bool, bool) {
	colons, semicolons := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case nameClose:
			colons++
			semicolons = 0
		case commentClose:
			semicolons++
			colons = 0
		default:
			colons, semicolons = 0, 0
		}

		if colons == fence {
			return i + 1 - fence, false, true
		}
		if semicolons == fence {
			return i + 1 - fence, true, true
		}
	}
	return 0, false, false
}
