package ley

import "fmt"

// ContentKind tags which variant of Content is populated.
type ContentKind uint8

const (
	// ContentText is raw, unparsed text between '[' and ']' runs.
	ContentText ContentKind = iota

	// ContentNested is a sequence of blocks between '{' and '}' runs.
	ContentNested
)

// String returns the lowercase name of the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentNested:
		return "nested"
	default:
		return fmt.Sprintf("ContentKind(%d)", uint8(k))
	}
}

// Content is the body of a block. Exactly one of Text or Blocks is meaningful,
// as selected by Kind.
type Content struct {
	Kind ContentKind

	// Text holds the raw bytes for ContentText, verbatim.
	Text string

	// Blocks holds the non-comment children for ContentNested.
	Blocks []*Block

	// Span covers the bytes between the opening and closing fences.
	Span Span

	// Fence is the width of the opening '{' or '[' run.
	Fence int
}

// MaxNesting is the deepest level of nested content a document may have.
const MaxNesting = 10000

// scanContent dispatches on the byte under the cursor. Callers only invoke it
// once they have located '{' or '['.
func scanContent(c *Cursor, depth int) (Content, error) {
	ch, ok := c.Peek()
	if !ok {
		return Content{}, unexpectedEOF(c, "expected %q or %q to open block content", nestedOpen, textOpen)
	}

	switch ch {
	case nestedOpen:
		return scanNested(c, depth+1)
	case textOpen:
		return scanText(c)
	default:
		panic(fmt.Sprintf("ley: content scanner called on %q at offset %d", ch, c.Offset()))
	}
}

// scanNested scans nested content at the given level, 1 for the content of a
// top-level block.
func scanNested(c *Cursor, depth int) (Content, error) {
	if depth > MaxNesting {
		return Content{}, nestingTooDeep(c)
	}
	fence := MeasureRun(c.Rest(), nestedOpen)
	if fence == 0 {
		return Content{}, invalidFence(c, "expected one or more %q to open nested content", nestedOpen)
	}
	open := c.Offset()
	c.Advance(fence)
	start := c.Offset()

	var blocks []*Block
	for {
		c.TrimSpace()
		if ch, ok := c.Peek(); !ok || ch != nameOpen {
			break
		}
		block, keep, err := scanBlock(c, depth)
		if err != nil {
			return Content{}, err
		}
		if keep {
			blocks = append(blocks, block)
		}
	}

	end := c.Offset()
	if c.Len() < fence {
		return Content{}, unexpectedEOF(c, "expected %d %q to close nested content opened at offset %d", fence, nestedClose, open)
	}
	if MeasureRun(c.Rest()[:fence], nestedClose) != fence {
		return Content{}, invalidFence(c, "expected %d %q to close nested content opened at offset %d", fence, nestedClose, open)
	}
	c.Advance(fence)

	return Content{
		Kind:   ContentNested,
		Blocks: blocks,
		Span:   Span{Start: start, End: end},
		Fence:  fence,
	}, nil
}

func scanText(c *Cursor) (Content, error) {
	fence := MeasureRun(c.Rest(), textOpen)
	if fence == 0 {
		return Content{}, invalidFence(c, "expected one or more %q to open text content", textOpen)
	}
	c.Advance(fence)

	idx, ok := FindClosingRun(c.Rest(), textClose, fence)
	if !ok {
		return Content{}, unexpectedEOF(c, "expected %d %q to close text content", fence, textClose)
	}
	text, span := c.Take(idx)
	c.Advance(fence)

	return Content{
		Kind:  ContentText,
		Text:  text,
		Span:  span,
		Fence: fence,
	}, nil
}
