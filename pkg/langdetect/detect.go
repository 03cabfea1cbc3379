// Package langdetect identifies Ruby source files. It uses go-enry to
// classify content, primarily for extensionless scripts and tool
// entrypoints that file-extension matching cannot catch.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langRuby = "Ruby"

// rubyBasenames are well-known Ruby files without a .rb extension.
var rubyBasenames = map[string]bool{
	"Rakefile":    true,
	"Gemfile":     true,
	"Guardfile":   true,
	"Capfile":     true,
	"Berksfile":   true,
	"Vagrantfile": true,
	"config.ru":   true,
}

// rubyExtensions are extensions handled without content inspection.
var rubyExtensions = map[string]bool{
	".rb":      true,
	".rake":    true,
	".gemspec": true,
	".ru":      true,
}

// IsRuby reports whether the file at path with the given content is
// Ruby source. Content may be nil when only the name is known; in
// that case only name-based checks apply.
func IsRuby(path string, content []byte) bool {
	if rubyExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	if rubyBasenames[filepath.Base(path)] {
		return true
	}
	if len(content) == 0 {
		return false
	}

	// Shebang is the most reliable content signal ("#!/usr/bin/env ruby").
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang == langRuby
	}

	if detectByPattern(content) {
		return true
	}

	lang, safe := enry.GetLanguageByClassifier(content, []string{
		"Ruby", "Python", "Shell", "JavaScript", "Go", "Perl",
	})
	return safe && lang == langRuby
}

// detectByPattern checks for constructs highly indicative of Ruby.
func detectByPattern(content []byte) bool {
	if bytes.Contains(content, []byte("# frozen_string_literal:")) ||
		bytes.Contains(content, []byte("# typed:")) {
		return true
	}
	// "def name ... end" without colons distinguishes Ruby defs from
	// Python's.
	if bytes.Contains(content, []byte("\ndef ")) || bytes.HasPrefix(content, []byte("def ")) {
		if !bytes.Contains(content, []byte("):")) && bytes.Contains(content, []byte("\nend")) {
			return true
		}
	}
	if bytes.Contains(content, []byte("require '")) || bytes.Contains(content, []byte(`require "`)) {
		return true
	}
	return false
}
