// Package arsc holds the decoded view of a compiled resource table and picks
// the package callers should treat as the default one.
//
// A resource table may legally carry several packages, for example a shared
// library package next to the application package. When a caller needs exactly
// one, [SelectPrimary] returns the package with the most resource specs. Ties
// go to the package decoded last.
//
// Decoding the binary table is done elsewhere; this package only consumes the
// result.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package arsc
