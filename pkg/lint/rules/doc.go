// Package rules provides the built-in lint rules for siglint.
//
// # Rules
//
//   - SG001: signature-required - Method definitions, singleton
//     definitions, and attr-accessor declarations must carry a Sorbet
//     sig block directly above them. The fix synthesizes a signature
//     with T.untyped placeholders, switching to the multi-line block
//     form when the single-line form would exceed the configured line
//     length, and adds "extend T::Sig" to the enclosing scope when
//     missing.
//
//   - SG002: no-gap-after-sig - A sig block must sit on the line
//     directly above the definition it signs. The fix collapses blank
//     lines in between and moves stray comment lines above the sig.
//
// Both fixes are idempotent: re-running either rule over its own
// corrected output produces no further diagnostics.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Each rule follows the lint.Rule interface and uses the RuleContext,
// DiagnosticBuilder, and EditBuilder infrastructure.
package rules
