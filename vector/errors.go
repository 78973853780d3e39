// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import "errors"

// ErrCapacityOverflow reports a capacity whose byte size does not fit in an int.
//
// It is raised through panic: asking for such a buffer is a caller bug, the
// same way the Go runtime panics on make with an oversized length.
var ErrCapacityOverflow = errors.New("vector: capacity overflows addressable memory")
