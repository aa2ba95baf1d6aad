// Package langdetect guesses the language of code held in ley text blocks.
// It uses go-enry, with the block name as a filename hint when it has one.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers returned by Detect.
const (
	langGo     = "go"
	langPython = "python"
	langJSON   = "json"
	langSQL    = "sql"
	langRust   = "rust"
	langText   = "text"
	langBash   = "bash"
)

// Method records how a language was chosen.
type Method string

// Detection methods, from most to least reliable.
const (
	MethodFilename   Method = "filename"
	MethodShebang    Method = "shebang"
	MethodPattern    Method = "pattern"
	MethodClassifier Method = "classifier"
	MethodNone       Method = "none"
)

// Detection is the result of Detect.
type Detection struct {
	Language string
	Method   Method
}

// classifierCandidates limits the classifier to languages likely to appear
// in documentation blocks.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown",
}

// Detect returns the language of content. name is a block name such as
// "main.go" or "setup"; it is only used when it carries an extension.
// Falls back to "text" when nothing is confident.
func Detect(name string, content []byte) Detection {
	if filepath.Ext(name) != "" {
		if lang, safe := enry.GetLanguageByFilename(name); safe && lang != "" {
			return Detection{Language: normalize(lang), Method: MethodFilename}
		}
		if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" {
			return Detection{Language: normalize(lang), Method: MethodFilename}
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return Detection{Language: langText, Method: MethodNone}
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return Detection{Language: normalize(lang), Method: MethodShebang}
	}

	if lang := detectByPattern(content); lang != "" {
		return Detection{Language: lang, Method: MethodPattern}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return Detection{Language: normalize(lang), Method: MethodClassifier}
	}

	return Detection{Language: langText, Method: MethodNone}
}

// detectByPattern checks a few highly indicative openings before the
// classifier gets a say.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return langGo
	case strings.Contains(text, "def ") && strings.Contains(text, "):"),
		strings.Contains(text, "__name__"):
		return langPython
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return langJSON
	case strings.Contains(text, "fn main()"), strings.Contains(text, "println!"):
		return langRust
	}

	upper := strings.ToUpper(string(trimmed))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, keyword) {
			return langSQL
		}
	}

	return ""
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
