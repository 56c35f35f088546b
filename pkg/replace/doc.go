// Package replace implements the tokrc placeholder-substitution engine.
//
// Given file text containing tokens of the form @key@ or @prefix.key@ and a
// merged key→value table, the engine produces the text with every recognized
// token replaced by its value. Tokens that reference an unknown key, or that
// lack a required prefix segment, are removed from the output and reported
// through a Reporter so a build surfaces every problem in one pass instead
// of stopping at the first bad token.
//
// An Engine is immutable after construction: the compiled pattern and the
// merged table are read-only, so a single Engine may be shared across
// goroutines that process files concurrently.
package replace
