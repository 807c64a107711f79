package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dshills/doccore/internal/style"
)

// classifier names the style of a node. whole reports that the style covers
// the node and its children, so the walk does not descend.
type classifier func(n *sitter.Node, src string) (name string, whole bool)

// highlight walks the tree and emits a span for every classified node.
func highlight(root *sitter.Node, src string, classify classifier) *style.Spans {
	var spans []style.Span
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		name, whole := classify(n, src)
		count := int(n.ChildCount())
		if name != "" && (whole || count == 0) {
			spans = append(spans, style.Span{
				Start: int(n.StartByte()),
				End:   int(n.EndByte()),
				Style: style.Style{FgColor: name},
			})
			return
		}
		for i := 0; i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return style.NewSpans(spans)
}

var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

func classifyGoNode(n *sitter.Node, src string) (string, bool) {
	switch n.Type() {
	case "comment":
		return "comment", true
	case "interpreted_string_literal", "raw_string_literal", "rune_literal":
		return "string", true
	case "int_literal", "float_literal", "imaginary_literal":
		return "number", true
	case "type_identifier":
		return "type", true
	case "nil", "true", "false", "iota":
		return "keyword", true
	case "identifier":
		if p := n.Parent(); p != nil {
			switch p.Type() {
			case "function_declaration", "call_expression":
				return "function", true
			}
		}
		return "", false
	}
	if !n.IsNamed() {
		if _, ok := goKeywords[n.Type()]; ok {
			return "keyword", true
		}
	}
	return "", false
}

var jsKeywords = map[string]struct{}{
	"async": {}, "await": {}, "break": {}, "case": {}, "catch": {},
	"class": {}, "const": {}, "continue": {}, "default": {}, "delete": {},
	"do": {}, "else": {}, "export": {}, "extends": {}, "finally": {},
	"for": {}, "function": {}, "if": {}, "import": {}, "in": {},
	"instanceof": {}, "let": {}, "new": {}, "of": {}, "return": {},
	"switch": {}, "throw": {}, "try": {}, "typeof": {}, "var": {},
	"void": {}, "while": {}, "yield": {},
}

func classifyJSNode(n *sitter.Node, src string) (string, bool) {
	switch n.Type() {
	case "comment":
		return "comment", true
	case "string", "template_string", "regex":
		return "string", true
	case "number":
		return "number", true
	case "true", "false", "null", "undefined", "this":
		return "keyword", true
	case "identifier":
		if p := n.Parent(); p != nil {
			switch p.Type() {
			case "function_declaration", "call_expression", "method_definition":
				return "function", true
			}
		}
		return "", false
	}
	if !n.IsNamed() {
		if _, ok := jsKeywords[n.Type()]; ok {
			return "keyword", true
		}
	}
	return "", false
}

var cKeywords = map[string]struct{}{
	"break": {}, "case": {}, "const": {}, "continue": {}, "default": {},
	"do": {}, "else": {}, "enum": {}, "extern": {}, "for": {},
	"goto": {}, "if": {}, "inline": {}, "register": {}, "restrict": {},
	"return": {}, "sizeof": {}, "static": {}, "struct": {}, "switch": {},
	"typedef": {}, "union": {}, "volatile": {}, "while": {},
}

func classifyCNode(n *sitter.Node, src string) (string, bool) {
	switch n.Type() {
	case "comment":
		return "comment", true
	case "string_literal", "char_literal", "system_lib_string":
		return "string", true
	case "number_literal":
		return "number", true
	case "type_identifier", "primitive_type", "sized_type_specifier":
		return "type", true
	case "#include", "#define", "#if", "#ifdef", "#ifndef", "#else", "#elif", "#endif":
		return "keyword", true
	}
	if !n.IsNamed() {
		if _, ok := cKeywords[n.Type()]; ok {
			return "keyword", true
		}
	}
	return "", false
}
