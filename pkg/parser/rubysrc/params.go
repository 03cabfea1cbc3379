package rubysrc

import (
	"strings"

	"github.com/yaklabco/siglint/pkg/rubyast"
)

// parseDefClause splits a "def" line into method name, singleton
// receiver ("self" or a constant, empty for instance methods), and
// the parameter list.
func parseDefClause(code string) (name, receiver string, params []rubyast.Param) {
	rest := strings.TrimSpace(strings.TrimPrefix(code, "def"))

	var clause string
	switch {
	case strings.Contains(rest, "("):
		open := strings.Index(rest, "(")
		name = strings.TrimSpace(rest[:open])
		clause = parenBody(rest[open:])
	default:
		// Parenless form: "def foo a, b" or bare "def foo".
		fields := strings.SplitN(rest, " ", 2)
		name = fields[0]
		if len(fields) == 2 && !strings.HasPrefix(strings.TrimSpace(fields[1]), "=") {
			clause = strings.TrimSpace(fields[1])
		}
	}

	name = strings.TrimSuffix(name, ";")
	if dot := strings.Index(name, "."); dot >= 0 {
		receiver = name[:dot]
		name = name[dot+1:]
	}

	return name, receiver, parseParams(clause)
}

// parenBody returns the text inside the balanced parentheses opening
// at s[0].
func parenBody(s string) string {
	depth := 0
	for i := range len(s) {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i]
			}
		}
	}
	return strings.TrimPrefix(s, "(")
}

// isEndlessDef reports the Ruby 3 "def name(...) = expr" form, which
// has no terminating "end".
func isEndlessDef(code string) bool {
	rest := strings.TrimSpace(strings.TrimPrefix(code, "def"))

	// Skip past the name and an optional balanced parameter list,
	// then look for a bare "=".
	if open := strings.Index(rest, "("); open >= 0 {
		depth := 0
		for i := open; i < len(rest); i++ {
			switch rest[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					tail := strings.TrimSpace(rest[i+1:])
					return strings.HasPrefix(tail, "=") && !strings.HasPrefix(tail, "==")
				}
			}
		}
		return false
	}

	fields := strings.SplitN(rest, " ", 2)
	if len(fields) < 2 {
		return false
	}
	tail := strings.TrimSpace(fields[1])
	return strings.HasPrefix(tail, "=") && !strings.HasPrefix(tail, "==")
}

// parseParams converts a parameter clause into Param records. The
// clause is the raw text between the def's parentheses (or after the
// name in parenless form).
func parseParams(clause string) []rubyast.Param {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return nil
	}

	var params []rubyast.Param
	for _, piece := range splitTopLevel(clause) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		params = append(params, classifyParams(piece)...)
	}
	return params
}

// classifyParams converts one comma-separated parameter token into
// Param records. Destructured groups flatten to one record per leaf.
func classifyParams(piece string) []rubyast.Param {
	switch {
	case strings.HasPrefix(piece, "("):
		inner := parenBody(piece)
		var flat []rubyast.Param
		for _, leaf := range splitTopLevel(inner) {
			leaf = strings.TrimSpace(leaf)
			if leaf == "" {
				continue
			}
			for _, p := range classifyParams(leaf) {
				p.Kind = rubyast.ParamDestructured
				flat = append(flat, p)
			}
		}
		return flat

	case strings.HasPrefix(piece, "&"):
		return []rubyast.Param{{Name: paramName(piece[1:]), Kind: rubyast.ParamBlock}}

	case strings.HasPrefix(piece, "**"):
		return []rubyast.Param{{Name: paramName(piece[2:]), Kind: rubyast.ParamRest}}

	case strings.HasPrefix(piece, "*"):
		return []rubyast.Param{{Name: paramName(piece[1:]), Kind: rubyast.ParamRest}}

	case isKeywordParam(piece):
		name := piece[:strings.Index(piece, ":")]
		return []rubyast.Param{{Name: strings.TrimSpace(name), Kind: rubyast.ParamKeyword}}

	default:
		return []rubyast.Param{{Name: paramName(piece), Kind: rubyast.ParamPositional}}
	}
}

// isKeywordParam distinguishes "name:" and "name: default" from
// positional defaults like "x = {a: 1}".
func isKeywordParam(piece string) bool {
	colon := strings.Index(piece, ":")
	if colon <= 0 {
		return false
	}
	for i := range colon {
		c := piece[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}

// paramName strips a default-value suffix from a parameter token.
func paramName(piece string) string {
	if eq := strings.Index(piece, "="); eq >= 0 {
		piece = piece[:eq]
	}
	return strings.TrimSpace(piece)
}

// splitTopLevel splits on commas that sit outside any (), [], {}
// nesting and outside string literals.
func splitTopLevel(s string) []string {
	var (
		pieces   []string
		depth    int
		start    int
		inSingle bool
		inDouble bool
	)

	for i := range len(s) {
		c := s[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
		case inDouble:
			if c == '"' {
				inDouble = false
			}
		case c == '\'':
			inSingle = true
		case c == '"':
			inDouble = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	pieces = append(pieces, s[start:])
	return pieces
}
