// Package digits treats integers as ordered sequences of digit symbols
// (decimal digits or binary bits) and provides the digit-run encoder shared
// by look-and-say, Baum–Sweet and the digit-pattern scanning predicates.
//
// Symbols are raw digit values (0..base-1), most significant first; no text
// manipulation is involved. A run is a maximal block of equal consecutive
// symbols:
//
//	Runs([1 1 2 3 3 3]) → [{1 2} {2 1} {3 3}]
package digits
