// Package diag defines the diagnostic model shared by all compiler stages.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – stable identifier (E001 lexical, E002 syntax, E003 semantic
//     error, W001 semantic warning, IO001 file loading).
//   - Message – human oriented text, one line.
//   - Primary – the source.Location the diagnostic points at.
//   - Notes – optional secondary locations, e.g. "first declared here".
//
// # Emitting diagnostics
//
// Stages report through a Reporter. ReportError / ReportWarning return a
// ReportBuilder so notes can be chained before Emit. BagReporter collects
// into a Bag; bags keep report order and merge in sequence.
//
// Package diag does no formatting beyond the JSON wire shape and the
// one-line golden form; terminal rendering lives in internal/diagfmt.
package diag
