// Package kfile parses LS-DYNA keyword input files ("K-files").
//
// A K-file is a line-oriented ASCII format. Lines whose first non-space
// character is '*' introduce a keyword block; lines starting with '$' are
// comments; everything else is fixed-width card data whose column layout
// depends on the active keyword. Blank fields and truncated trailing
// columns decode to zero.
//
// The parser is a single-pass state machine: each keyword line commits any
// in-flight entity and selects the handler for the following data cards.
// Sets, materials, curves and history lists have no explicit terminator;
// the next keyword (or end of input) terminates them.
//
// Parsing never fails on malformed cards. Recoverable decode problems are
// collected as warnings on the ParseResult; only a failed file read is
// reported as an error.
package kfile
