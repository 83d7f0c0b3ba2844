// Package ordinal spells non-negative integers as English cardinals and
// ordinals.
//
// Numbers are split into three-digit groups; each group is named from the
// ones/teens/tens tables plus "hundred", and groups are joined with the
// magnitude words thousand, million, billion and trillion. The ordinal form
// rewrites only the last word (one → first, twenty → twentieth, hundred →
// hundredth, …).
//
// By default words are concatenated with no separator, because the Aronson
// generator counts letters only:
//
//	Name(24)                        → "twentyfourth"
//	Name(104, WithSeparator(" "))   → "one hundred fourth"
//
// The supported range is 0 through MaxValue (999 999 999 999 999).
package ordinal
