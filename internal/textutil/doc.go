// Package textutil provides the text normalization shared by roster lookup
// and report rendering.
//
// FoldName is the canonical form used everywhere an attendee label is
// compared: lowercase, diacritics stripped, punctuation removed, whitespace
// collapsed. Two labels that fold to the same string refer to the same
// person as far as this repository is concerned; anything smarter belongs in
// an external resolver.
package textutil
