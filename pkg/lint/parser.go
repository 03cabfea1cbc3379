package lint

import (
	"context"

	"github.com/yaklabco/siglint/pkg/rubyast"
)

// Parser parses Ruby source content into a FileSnapshot.
//
// The lint package defines this interface in the consumer package;
// implementations (e.g., parser/rubysrc) provide the concrete parsing
// logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Ruby bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw source bytes (must not be mutated by the implementation).
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - snapshot.Tree != nil with a NodeSource root
	//   - every node range within [0, len(content)]
	Parse(ctx context.Context, path string, content []byte) (*rubyast.FileSnapshot, error)
}
