package rules

import "github.com/yaklabco/siglint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewSignatureRequiredRule()) // SG001
	registry.Register(NewNoGapAfterSigRule())     // SG002
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
