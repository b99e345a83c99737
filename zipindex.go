// Package zipindex builds an in-memory, case-insensitive word index over
// a zip archive of HTML documents and answers membership queries ("which
// documents contain word W"). It locates the archive, extracts visible
// text from each HTML entry, tokenizes it into lowercase alphabetic
// words, and serves set-membership searches over the result.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., zip/,
// goquery/, bloom/).
package zipindex
