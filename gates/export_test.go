// SPDX-License-Identifier: MIT

package gates

import "github.com/katalvlaran/statevec/tensor"

// UncheckedForTest builds a fixed gate without validating m, so tests can
// hold gates no public constructor would return.
func UncheckedForTest(name string, m *tensor.Dense, targets ...int) Uncontrolled {
	return Uncontrolled{name: name, targets: targets, matrix: m}
}
