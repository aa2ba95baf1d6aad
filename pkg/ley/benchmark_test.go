package ley_test

import (
	"context"
	"strings"
	"testing"

	"github.com/yaklabco/leyline/pkg/ley"
)

// benchmarkSource builds a document of n sections, each holding text blocks
// whose content contains shorter runs of the fence characters.
func benchmarkSource(n int) string {
	var b strings.Builder
	for i := range n {
		b.WriteString("!!section:: section {{\n")
		b.WriteString("  !intro: paragraph [[[Counted fences let text hold ] and ]] freely.]]]\n")
		b.WriteString("  !note; exact [dropped]\n")
		b.WriteString("  !code: code [[[func f() { return a[b[0]] }]]]\n")
		if i%2 == 0 {
			b.WriteString("  !inner: section { !leaf: exact [x] }\n")
		}
		b.WriteString("}}\n")
	}
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	src := benchmarkSource(200)
	b.SetBytes(int64(len(src)))

	b.ResetTimer()
	for range b.N {
		doc, err := ley.Parse(src)
		if err != nil || len(doc.Blocks) != 200 {
			b.Fatalf("parse failed: %v", err)
		}
	}
}

func BenchmarkParseFile(b *testing.B) {
	content := []byte(benchmarkSource(200))
	ctx := context.Background()
	b.SetBytes(int64(len(content)))

	b.ResetTimer()
	for range b.N {
		if _, err := ley.ParseFile(ctx, "bench.ley", content); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
