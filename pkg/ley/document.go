package ley

import "errors"

// Document is the ordered sequence of top-level, non-comment blocks.
type Document struct {
	// Source is the input the document was parsed from. All spans index into it.
	Source string

	// Blocks are the top-level blocks in source order.
	Blocks []*Block
}

// Parse scans src into a Document. On failure it returns a *SyntaxError
// carrying the line and column of the failure, and no partial tree.
func Parse(src string) (*Document, error) {
	doc, err := scanDocument(NewCursor(src))
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			locate(syntaxErr, src)
		}
		return nil, err
	}
	return doc, nil
}

func scanDocument(c *Cursor) (*Document, error) {
	doc := &Document{Source: c.Source()}
	for {
		c.TrimSpace()
		if c.Empty() {
			return doc, nil
		}
		block, keep, err := scanBlock(c, 0)
		if err != nil {
			return nil, err
		}
		if keep {
			doc.Blocks = append(doc.Blocks, block)
		}
	}
}

// Walk visits every block of the document in pre-order.
func (d *Document) Walk(fn WalkFunc) error {
	return Walk(d.Blocks, fn)
}

// Text returns the source text covered by span.
func (d *Document) Text(span Span) string {
	return span.Text(d.Source)
}

func locate(err *SyntaxError, src string) {
	err.Line, err.Column = Position(src, err.Offset)
}
