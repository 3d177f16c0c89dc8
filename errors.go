package ipa

import "fmt"

// UnknownSymbolError reports a classification request for a symbol
// absent from the symbol table.
type UnknownSymbolError struct {
	Symbol string
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown IPA symbol %q", e.Symbol)
}

// MalformedInputError reports a symbol sequence violating IPA
// composition rules, e.g. a combining diacritic or tie bar without a
// preceding letter. Offset is the rune offset of the offending symbol
// in the (decomposed) source text.
type MalformedInputError struct {
	Symbol string
	Offset int
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed IPA input: symbol %q at offset %d has no preceding letter", e.Symbol, e.Offset)
}

// UnsupportedLanguageError reports a phoneme-table request for a
// language or language/set key with no loaded table.
type UnsupportedLanguageError struct {
	Language string
}

func (e UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("no phoneme table for language %q", e.Language)
}

// UnmappableSymbolError reports a notation conversion for which no
// mapping entry exists. Symbol is the offending IPA symbol or foreign
// token, Offset its rune offset in the input.
type UnmappableSymbolError struct {
	Symbol   string
	Offset   int
	Notation string
}

func (e UnmappableSymbolError) Error() string {
	return fmt.Sprintf("symbol %q at offset %d has no mapping in notation %q", e.Symbol, e.Offset, e.Notation)
}
