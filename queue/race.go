// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package queue

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent runs of the generic queues: slot contents
// are ordered by per-cursor atomics the detector does not relate to them.
const RaceEnabled = true
