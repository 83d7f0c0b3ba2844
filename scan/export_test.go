// SPDX-License-Identifier: MIT
package scan

// WithClock exposes withClock to the external test package.
var WithClock = withClock
