// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"testing"
	"unsafe"
)

// TestSPSCLayout checks that state written by different sides never shares
// a cache line.
func TestSPSCLayout(t *testing.T) {
	var q SPSC[int64]
	fields := []struct {
		name string
		off  uintptr
	}{
		{"tail", unsafe.Offsetof(q.tail)},
		{"head", unsafe.Offsetof(q.head)},
		{"prod", unsafe.Offsetof(q.prod)},
		{"cons", unsafe.Offsetof(q.cons)},
	}
	for i := 1; i < len(fields); i++ {
		prev, cur := fields[i-1], fields[i]
		if gap := cur.off - prev.off; gap < uintptr(cacheLineSize) {
			t.Errorf("%s to %s: %d bytes apart, want >= %d", prev.name, cur.name, gap, cacheLineSize)
		}
	}
}

func TestMPMCLayout(t *testing.T) {
	var q MPMC[int64]
	if gap := unsafe.Offsetof(q.head) - unsafe.Offsetof(q.tail); gap < uintptr(cacheLineSize) {
		t.Errorf("tail to head: %d bytes apart, want >= %d", gap, cacheLineSize)
	}
	if size := unsafe.Sizeof(mpmcCell[int64]{}); size < uintptr(cacheLineSize) {
		t.Errorf("cell size: %d, want >= %d", size, cacheLineSize)
	}
}

func TestSPSCViewsShareBuffer(t *testing.T) {
	q := NewSPSC[int](3)
	if &q.prod.buffer[0] != &q.cons.buffer[0] {
		t.Fatal("producer and consumer views point at different buffers")
	}
	if q.prod.slots != 4 || q.cons.slots != 4 {
		t.Fatalf("slots: producer %d, consumer %d, want 4", q.prod.slots, q.cons.slots)
	}
}
