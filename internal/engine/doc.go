// Package engine implements the pure filename transformations behind the
// rename preview. Every operation maps an original filename (plus its rule
// parameters) to a new filename string: no I/O, no failure modes. Rules are
// applied as an ordered pipeline so simple operations compose, e.g.
// lowercase followed by spaces-to-underscores.
//
// Extension policy: only the final dot segment counts as the extension, so
// "archive.tar.gz" splits into body "archive.tar" and extension ".gz". A
// leading-dot name like ".bashrc" has no extension. Operations that touch
// the body only (suffix insertion, camel case, digit removal) share this
// split; text replace/remove and case folding run over the full name.
package engine
