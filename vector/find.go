// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import "slices"

// Find returns the index of the first element equal to value,
// or v.Len() when there is none.
func Find[T comparable, S any, B Backend[T, S]](v *Engine[T, S, B], value T) int {
	if i := slices.Index(v.Slice(), value); i >= 0 {
		return i
	}
	return v.Len()
}

// Contains reports whether value is in v.
func Contains[T comparable, S any, B Backend[T, S]](v *Engine[T, S, B], value T) bool {
	return slices.Contains(v.Slice(), value)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable, S any, B Backend[T, S]](a, b *Engine[T, S, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}
