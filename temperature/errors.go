package temperature

import "errors"

// ErrUnknownFormula is returned by SetFormula (and surfaced as a fatal
// configuration error per spec.md §7 category 3) when asked for a
// formula name not present in the Formulas table.
var ErrUnknownFormula = errors.New("temperature: unknown adjustment formula")
