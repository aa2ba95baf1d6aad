package structure

import (
	"context"
	"strings"
	"unicode"

	"github.com/yaklabco/leyline/pkg/ley"
)

// GrammarKind classifies a prose token.
type GrammarKind uint8

const (
	// GrammarWord is a run of runes that are neither whitespace nor punctuation.
	GrammarWord GrammarKind = iota

	// GrammarSentenceEnd is a run of '.', '!' and '?'.
	GrammarSentenceEnd

	// GrammarComma is a single ','.
	GrammarComma

	// GrammarHyphen is a dash run, or a single '-' joining two words.
	GrammarHyphen

	// GrammarQuotation is a straight or curly double quote.
	GrammarQuotation
)

// String returns the lowercase name of the kind.
func (k GrammarKind) String() string {
	switch k {
	case GrammarWord:
		return "word"
	case GrammarSentenceEnd:
		return "sentence-end"
	case GrammarComma:
		return "comma"
	case GrammarHyphen:
		return "hyphen"
	case GrammarQuotation:
		return "quotation"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k GrammarKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Grammar is one token of prose.
type Grammar struct {
	Kind GrammarKind `json:"kind" yaml:"kind"`
	Text string      `json:"text" yaml:"text"`

	// Joined marks a hyphen written between two words with no spacing.
	Joined bool `json:"joined,omitempty" yaml:"joined,omitempty"`
}

// Tokenize splits prose into words and punctuation. Whitespace only
// separates tokens and is not kept.
func Tokenize(text string) []Grammar {
	runes := []rune(text)
	var tokens []Grammar
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, Grammar{Kind: GrammarWord, Text: word.String()})
			word.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			flush()

		case (r == '.' || r == ',') && word.Len() > 0 && betweenDigits(runes, i):
			word.WriteRune(r)

		case isSentenceEnd(r):
			flush()
			j := i
			for j < len(runes) && isSentenceEnd(runes[j]) {
				j++
			}
			tokens = append(tokens, Grammar{Kind: GrammarSentenceEnd, Text: string(runes[i:j])})
			i = j - 1

		case r == ',':
			flush()
			tokens = append(tokens, Grammar{Kind: GrammarComma, Text: ","})

		case r == '-' && word.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			flush()
			tokens = append(tokens, Grammar{Kind: GrammarHyphen, Text: "-", Joined: true})

		case isDash(r):
			flush()
			j := i
			for j < len(runes) && isDash(runes[j]) {
				j++
			}
			tokens = append(tokens, Grammar{Kind: GrammarHyphen, Text: string(runes[i:j])})
			i = j - 1

		case isQuote(r):
			flush()
			tokens = append(tokens, Grammar{Kind: GrammarQuotation, Text: string(r)})

		default:
			word.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Reconstruct joins tokens into prose with normalized spacing: one space
// between words, none before punctuation, none inside quotation marks, and
// spaced dashes except for joined hyphens.
func Reconstruct(tokens []Grammar) string {
	var b strings.Builder
	glue := true // no space before the next token
	inQuote := false

	space := func() {
		if !glue {
			b.WriteByte(' ')
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case GrammarWord:
			space()
			b.WriteString(tok.Text)
			glue = false
		case GrammarSentenceEnd, GrammarComma:
			b.WriteString(tok.Text)
			glue = false
		case GrammarHyphen:
			if tok.Joined {
				b.WriteString(tok.Text)
				glue = true
				continue
			}
			space()
			b.WriteString(tok.Text)
			glue = false
		case GrammarQuotation:
			if inQuote {
				b.WriteString(tok.Text)
				glue = false
			} else {
				space()
				b.WriteString(tok.Text)
				glue = true
			}
			inQuote = !inQuote
		}
	}

	return b.String()
}

func betweenDigits(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isDash(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}

func isQuote(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ParagraphHandler normalizes prose.
type ParagraphHandler struct{}

// NewParagraphHandler creates the "paragraph" structure handler.
func NewParagraphHandler() *ParagraphHandler {
	return &ParagraphHandler{}
}

// Name implements Handler.
func (h *ParagraphHandler) Name() string { return "paragraph" }

// Description implements Handler.
func (h *ParagraphHandler) Description() string {
	return "Prose split into words and punctuation, with spacing normalized"
}

// Accepts implements Handler.
func (h *ParagraphHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentText }

// Interpret implements Handler.
func (h *ParagraphHandler) Interpret(_ context.Context, _ *Dispatcher, block *ley.Block) (*Result, error) {
	tokens := Tokenize(block.Content.Text)

	result := newResult(h, block)
	result.Output = Reconstruct(tokens)
	result.Data = tokens
	return result, nil
}
