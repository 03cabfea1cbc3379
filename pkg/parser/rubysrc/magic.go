package rubysrc

import (
	"strings"

	"github.com/yaklabco/siglint/pkg/rubyast"
)

// scanTypedLevel reads the Sorbet sigil from the file's leading
// comment block. Scanning stops at the first line that is neither a
// comment nor blank, matching how Sorbet locates magic comments.
func scanTypedLevel(snapshot *rubyast.FileSnapshot) rubyast.TypedLevel {
	for lineNum := 1; lineNum <= snapshot.LineCount(); lineNum++ {
		line := strings.TrimSpace(string(snapshot.LineContent(lineNum)))
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}

		rest, ok := strings.CutPrefix(line, "#")
		if !ok {
			break
		}
		key, value, found := strings.Cut(rest, ":")
		if !found || strings.TrimSpace(key) != "typed" {
			continue
		}

		switch strings.TrimSpace(value) {
		case "ignore":
			return rubyast.TypedIgnore
		case "false":
			return rubyast.TypedFalse
		case "true":
			return rubyast.TypedTrue
		case "strict":
			return rubyast.TypedStrict
		case "strong":
			return rubyast.TypedStrong
		}
	}
	return rubyast.TypedNone
}
