package syntax

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	sitterc "github.com/smacker/go-tree-sitter/c"
	sittergo "github.com/smacker/go-tree-sitter/golang"
	sitterjs "github.com/smacker/go-tree-sitter/javascript"
)

// Language describes one grammar and how to highlight its trees.
type Language struct {
	Name       string
	Extensions []string

	// Indent is the indentation unit used when a document has none.
	Indent string

	grammar  func() *sitter.Language
	classify classifier
}

var languages = []*Language{
	{
		Name:       "go",
		Extensions: []string{".go"},
		Indent:     "\t",
		grammar:    sittergo.GetLanguage,
		classify:   classifyGoNode,
	},
	{
		Name:       "javascript",
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Indent:     "  ",
		grammar:    sitterjs.GetLanguage,
		classify:   classifyJSNode,
	},
	{
		Name:       "c",
		Extensions: []string{".c", ".h"},
		Indent:     "    ",
		grammar:    sitterc.GetLanguage,
		classify:   classifyCNode,
	},
}

// Languages returns the known languages.
func Languages() []*Language {
	return languages
}

// LanguageForPath returns the language registered for the path's extension.
func LanguageForPath(path string) (*Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, lang := range languages {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang, true
			}
		}
	}
	return nil, false
}

// LanguageByName returns the language with the given name.
func LanguageByName(name string) (*Language, bool) {
	for _, lang := range languages {
		if lang.Name == name {
			return lang, true
		}
	}
	return nil, false
}
