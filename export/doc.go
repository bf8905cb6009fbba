// Package export writes generated floor plans as JSON interchange
// documents: the plan itself, optional run metadata, and a computed
// statistics block.
package export
