package script

import (
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenIdent tokenType = iota
	tokenString
	tokenNumber
	tokenPunct
)

type token struct {
	value string
	kind  tokenType
	line  int
	start int
	end   int
}

// tokenize splits module source into identifier, string, number, and
// punctuation tokens, skipping comments. It assumes well-formed module
// code; it is not a full ECMAScript lexer and does not parse template
// interpolation or regular expression literals.
func tokenize(input string) []token {
	var tokens []token
	line := 1
	runes := []rune(input)

	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		// Block comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			i += 2
			for i+1 < len(runes) && !(runes[i] == '*' && runes[i+1] == '/') {
				if runes[i] == '\n' {
					line++
				}
				i++
			}
			i++
			continue
		}

		// String literal, including template literals
		if r == '"' || r == '\'' || r == '`' {
			quote := r
			start := i
			i++
			for i < len(runes) && runes[i] != quote {
				if runes[i] == '\\' {
					i++
				} else if runes[i] == '\n' {
					line++
				}
				i++
			}
			tokens = append(tokens, token{
				value: string(runes[start+1 : min(i, len(runes))]),
				kind:  tokenString,
				line:  line,
				start: offsets[start],
				end:   offsets[min(i+1, len(runes))],
			})
			continue
		}

		// Number
		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) || unicode.IsLetter(c) || c == '.' || c == '_' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, token{
				value: string(runes[start:i]),
				kind:  tokenNumber,
				line:  line,
				start: offsets[start],
				end:   offsets[i],
			})
			i--
			continue
		}

		// Identifier
		if r == '$' || r == '_' || unicode.IsLetter(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if c == '$' || c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, token{
				value: string(runes[start:i]),
				kind:  tokenIdent,
				line:  line,
				start: offsets[start],
				end:   offsets[i],
			})
			i--
			continue
		}

		tokens = append(tokens, token{
			value: string(r),
			kind:  tokenPunct,
			line:  line,
			start: offsets[i],
			end:   offsets[i+1],
		})
	}

	return tokens
}

type scanner struct {
	tokens []token
	pos    int
}

func (s *scanner) peek() *token {
	if s.pos >= len(s.tokens) {
		return nil
	}
	return &s.tokens[s.pos]
}

func (s *scanner) next() *token {
	if s.pos >= len(s.tokens) {
		return nil
	}
	t := &s.tokens[s.pos]
	s.pos++
	return t
}

func (s *scanner) acceptIdent(value string) bool {
	t := s.peek()
	if t == nil || t.kind != tokenIdent || t.value != value {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) acceptPunct(value string) bool {
	t := s.peek()
	if t == nil || t.kind != tokenPunct || t.value != value {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) ident() (string, bool) {
	t := s.peek()
	if t == nil || t.kind != tokenIdent {
		return "", false
	}
	s.pos++
	return t.value, true
}

func (s *scanner) str() (string, bool) {
	t := s.peek()
	if t == nil || t.kind != tokenString {
		return "", false
	}
	s.pos++
	return t.value, true
}

// Scan extracts the top-level import and export declarations of a script
// module. Statements the scanner does not model come back as RawStmt runs
// with surrounding blank lines trimmed, in source order between the
// declarations they separate. Dynamic import calls and TypeScript
// type-only imports are left in the raw runs.
//
// Scan is a minimal bridge for callers without a full parser; anything
// producing a richer AST should build the statement list itself.
func Scan(source string) []Stmt {
	s := &scanner{tokens: tokenize(source)}

	var stmts []Stmt
	rawStart := 0
	depth := 0

	flushRaw := func(until int) {
		text := strings.TrimSpace(source[rawStart:until])
		if text != "" {
			stmts = append(stmts, &RawStmt{Text: text})
		}
	}

	for s.pos < len(s.tokens) {
		t := s.tokens[s.pos]

		if t.kind == tokenPunct {
			switch t.value {
			case "{", "(", "[":
				depth++
			case "}", ")", "]":
				depth--
			}
			s.pos++
			continue
		}

		if depth == 0 && t.kind == tokenIdent && !s.afterDot() {
			var decl Stmt
			var ok bool
			mark := s.pos
			switch t.value {
			case "import":
				decl, ok = s.scanImport()
			case "export":
				decl, ok = s.scanExport()
			}
			if ok {
				flushRaw(t.start)
				stmts = append(stmts, decl)
				rawStart = s.tokens[s.pos-1].end
				continue
			}
			s.pos = mark
		}

		s.pos++
	}

	flushRaw(len(source))
	return stmts
}

// afterDot reports whether the current token follows a member access dot
func (s *scanner) afterDot() bool {
	return s.pos > 0 && s.tokens[s.pos-1].kind == tokenPunct && s.tokens[s.pos-1].value == "."
}

// scanImport consumes one import declaration starting at the import
// keyword. On failure the caller restores the position.
func (s *scanner) scanImport() (Stmt, bool) {
	s.pos++

	// import "source";
	if src, ok := s.str(); ok {
		s.acceptPunct(";")
		return &ImportDecl{Source: src}, true
	}

	var specs []ImportSpecifier

	if local, ok := s.ident(); ok {
		specs = append(specs, ImportSpecifier{Kind: SpecifierDefault, Local: local})
		if !s.acceptPunct(",") {
			return s.finishImport(specs)
		}
	}

	if s.acceptPunct("*") {
		if !s.acceptIdent("as") {
			return nil, false
		}
		local, ok := s.ident()
		if !ok {
			return nil, false
		}
		specs = append(specs, ImportSpecifier{Kind: SpecifierNamespace, Local: local})
		return s.finishImport(specs)
	}

	if s.acceptPunct("{") {
		named, ok := s.scanNamedList()
		if !ok {
			return nil, false
		}
		for _, n := range named {
			specs = append(specs, ImportSpecifier{Kind: SpecifierNamed, Local: n.local, Imported: n.imported})
		}
		return s.finishImport(specs)
	}

	return nil, false
}

func (s *scanner) finishImport(specs []ImportSpecifier) (Stmt, bool) {
	if len(specs) == 0 {
		return nil, false
	}
	if !s.acceptIdent("from") {
		return nil, false
	}
	src, ok := s.str()
	if !ok {
		return nil, false
	}
	s.acceptPunct(";")
	return &ImportDecl{Source: src, Specifiers: specs}, true
}

// scanExport consumes export-all and named-export declarations. Default
// and local declaration exports fail back into the raw run.
func (s *scanner) scanExport() (Stmt, bool) {
	s.pos++

	if s.acceptPunct("*") {
		if s.acceptIdent("as") {
			if _, ok := s.ident(); !ok {
				return nil, false
			}
		}
		if !s.acceptIdent("from") {
			return nil, false
		}
		src, ok := s.str()
		if !ok {
			return nil, false
		}
		s.acceptPunct(";")
		return &ExportAllDecl{Source: src}, true
	}

	if s.acceptPunct("{") {
		named, ok := s.scanNamedList()
		if !ok {
			return nil, false
		}
		names := make([]string, len(named))
		for i, n := range named {
			names[i] = n.imported
		}
		decl := &ExportNamedDecl{Names: names}
		if s.acceptIdent("from") {
			src, ok := s.str()
			if !ok {
				return nil, false
			}
			decl.Source = src
		}
		s.acceptPunct(";")
		return decl, true
	}

	return nil, false
}

type namedBinding struct {
	imported string
	local    string
}

// scanNamedList consumes "a, b as c, d" up to and including the closing
// brace, tolerating a trailing comma
func (s *scanner) scanNamedList() ([]namedBinding, bool) {
	var out []namedBinding
	for {
		if s.acceptPunct("}") {
			return out, true
		}
		name, ok := s.ident()
		if !ok {
			return nil, false
		}
		b := namedBinding{imported: name, local: name}
		if s.acceptIdent("as") {
			local, ok := s.ident()
			if !ok {
				return nil, false
			}
			b.local = local
		}
		out = append(out, b)
		if s.acceptPunct(",") {
			continue
		}
		if s.acceptPunct("}") {
			return out, true
		}
		return nil, false
	}
}
