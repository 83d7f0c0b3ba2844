// SPDX-License-Identifier: MIT
// Package: lvseq/sequences
//
// registry.go - the name → generator table.
//
// Contract:
//   • The table is built at package init and never mutated afterwards.
//   • Generate validates n before resolving the name, so a bad count is
//     reported as validate.ErrInvalidArgument even for unknown names.
//   • Names() and Entries() are sorted by name and return fresh slices.

package sequences

import (
	"math/big"
	"sort"
	"time"

	"github.com/katalvlaran/lvseq/validate"
)

// Generator produces the first n terms of one sequence.
type Generator func(n int, opts ...Option) ([]*big.Int, error)

// Entry describes one registered sequence.
type Entry struct {
	Name    string // registry key, snake_case
	Kind    Kind
	OEIS    string // A-number, empty when no single entry matches the variant
	Summary string
	gen     Generator
}

// Generate runs the entry's generator.
func (e Entry) Generate(n int, opts ...Option) ([]*big.Int, error) {
	return e.gen(n, opts...)
}

var catalog = []Entry{
	{"whole", ClosedForm, "A001477", "whole numbers 0, 1, 2, …", Whole},
	{"natural", ClosedForm, "A000027", "natural numbers 1, 2, 3, …", Natural},
	{"negative", ClosedForm, "A001478", "negative integers -1, -2, -3, …", Negative},
	{"square", ClosedForm, "A000290", "squares i²", Square},
	{"cube", ClosedForm, "A000578", "cubes i³", Cube},
	{"factorial", ClosedForm, "A000142", "factorials i!", Factorial},
	{"triangular", ClosedForm, "A000217", "triangular numbers i(i+1)/2", Triangular},
	{"tetrahedral", ClosedForm, "A000292", "tetrahedral numbers i(i+1)(i+2)/6", Tetrahedral},
	{"octahedral", ClosedForm, "A005900", "octahedral numbers i(2i²+1)/3", Octahedral},
	{"dodecahedral", ClosedForm, "A006566", "dodecahedral numbers i(3i-1)(3i-2)/2", Dodecahedral},
	{"icosahedral", ClosedForm, "A006564", "icosahedral numbers i(5i²-5i+2)/2", Icosahedral},
	{"sq_pyramid", ClosedForm, "A000330", "square pyramidal numbers Σk²", SquarePyramidal},
	{"star", ClosedForm, "A003154", "star numbers 6i(i-1)+1", Star},
	{"stella_octangula", ClosedForm, "A007588", "stella octangula numbers i(2i²-1)", StellaOctangula},
	{"central_polygon", ClosedForm, "A000124", "lazy caterer's numbers (i²+i+2)/2", CentralPolygon},
	{"magic_constants", ClosedForm, "A006003", "magic square constants i(i²+1)/2", MagicConstants},
	{"woodall", ClosedForm, "A003261", "Woodall numbers i·2^i-1", Woodall},
	{"cullen", ClosedForm, "A002064", "Cullen numbers i·2^i+1", Cullen},
	{"pronic", ClosedForm, "A002378", "pronic numbers i(i+1)", Pronic},
	{"carol", ClosedForm, "A093112", "Carol numbers (2^i-1)²-2", Carol},
	{"gould", ClosedForm, "A001316", "odd entries per Pascal row", Gould},
	{"central_binomial", ClosedForm, "A000984", "central binomial coefficients C(2i,i)", CentralBinomial},
	{"catalan", ClosedForm, "A000108", "Catalan numbers C(2i,i)/(i+1)", Catalan},

	{"fibonacci", Recurrence, "A000045", "F(n) = F(n-1) + F(n-2)", Fibonacci},
	{"negafibonacci", Recurrence, "A039834", "F(-n) = (-1)^(n+1)·F(n)", NegaFibonacci},
	{"tribonacci", Recurrence, "A000073", "T(n) = T(n-1) + T(n-2) + T(n-3)", Tribonacci},
	{"negatribonacci", Recurrence, "", "(-1)^(n+1)·T(n)", NegaTribonacci},
	{"lucas", Recurrence, "A000032", "L(n) = L(n-1) + L(n-2), seeded 2, 1", Lucas},
	{"negalucas", Recurrence, "", "L(-n) = (-1)^n·L(n)", NegaLucas},
	{"supergolden", Recurrence, "A000930", "a(n) = a(n-1) + a(n-3)", Supergolden},
	{"padovan", Recurrence, "A134816", "a(n) = a(n-2) + a(n-3), seeded 1, 1, 1", Padovan},
	{"perrin", Recurrence, "A001608", "a(n) = a(n-2) + a(n-3), seeded 3, 0, 2", Perrin},
	{"pell", Recurrence, "A000129", "a(n) = 2a(n-1) + a(n-2)", Pell},
	{"jacobsthal", Recurrence, "A001045", "a(n) = a(n-1) + 2a(n-2)", Jacobsthal},
	{"sylvester", Recurrence, "A000058", "a(n) = a(n-1)² - a(n-1) + 1", Sylvester},

	{"prime", Scanning, "A000040", "prime numbers", Prime},
	{"composite", Scanning, "A002808", "composite numbers", Composite},
	{"palindrome", Scanning, "A002113", "decimal palindromes", Palindrome},
	{"arithmetic", Scanning, "A003601", "numbers with integral mean divisor", Arithmetic},
	{"perfect", Scanning, "A000396", "perfect numbers", Perfect},
	{"undulating", Scanning, "A046075", "ABAB… numbers with A ≠ B", Undulating},
	{"sophie_germain", Scanning, "A005384", "primes p with 2p+1 prime", SophieGermain},
	{"circular_prime", Scanning, "A016114", "smallest member of each circular prime class", CircularPrime},
	{"prime_powers", Scanning, "A246655", "prime powers p^k, k ≥ 1", PrimePowers},
	{"semiprime", Scanning, "A001358", "products of two primes", Semiprime},
	{"sphenic", Scanning, "A007304", "products of three distinct primes", Sphenic},

	{"van_eck", SelfReferential, "A181391", "gap since the previous occurrence", VanEck},
	{"recaman", SelfReferential, "A005132", "subtract if new and positive, else add", Recaman},
	{"look_say", SelfReferential, "A005150", "look-and-say", LookSay},
	{"aronson", SelfReferential, "A005224", "positions of 't' in Aronson's sentence", Aronson},
	{"baum_sweet", SelfReferential, "A086747", "no odd block of zeros in binary", BaumSweet},
	{"euclid_mullin", SelfReferential, "A000945", "least prime factor of 1 + product so far", EuclidMullin},
}

// aliases maps alternative spellings onto registry keys.
var aliases = map[string]string{
	"jacobstathal":     "jacobsthal",
	"square_pyramidal": "sq_pyramid",
	"lazy_caterer":     "central_polygon",
	"narayana":         "supergolden",
	"circular_primes":  "circular_prime",
	"primes":           "prime",
}

var registry = func() map[string]Entry {
	m := make(map[string]Entry, len(catalog))
	for _, e := range catalog {
		if _, dup := m[e.Name]; dup {
			panic("sequences: duplicate registry name " + e.Name)
		}
		m[e.Name] = e
	}

	return m
}()

// Lookup resolves a name or alias.
func Lookup(name string) (Entry, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	e, ok := registry[name]

	return e, ok
}

// Names returns every registry key, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Entries returns every registered entry, sorted by name.
func Entries() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Generate returns the first n terms of the named sequence.
//
// Errors:
//   - validate.ErrInvalidArgument if n < 1 (checked first);
//   - ErrUnknownSequence if name is not registered;
//   - validate.ErrUnbounded if a configured budget is exhausted.
func Generate(name string, n int, opts ...Option) ([]*big.Int, error) {
	if _, err := validate.CountFor(MethodGenerate, n); err != nil {
		return nil, err
	}
	e, ok := Lookup(name)
	if !ok {
		return nil, validate.Errorf(MethodGenerate, ErrUnknownSequence, "%q", name)
	}

	cfg := newConfig(opts...)
	start := time.Now()
	terms, err := e.gen(n, opts...)
	if cfg.logger != nil {
		if err != nil {
			cfg.logger.Debug("generation failed", "name", e.Name, "kind", e.Kind, "n", n,
				"elapsed", time.Since(start), "err", err)
		} else {
			cfg.logger.Debug("generated", "name", e.Name, "kind", e.Kind, "n", n,
				"elapsed", time.Since(start))
		}
	}

	return terms, err
}
