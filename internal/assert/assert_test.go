// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/core/internal/assert"
)

func TestChecksPass(t *testing.T) {
	require.NotPanics(t, func() {
		assert.That(true, "unused")
		assert.Index("At", 0, 1)
		assert.Range("Erase", 0, 2, 2)
	})
}

func TestViolation(t *testing.T) {
	var buf bytes.Buffer
	assert.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer assert.SetLogger(nil)

	violate := func() { assert.Index("At", 3, 2) }
	if !assert.Enabled {
		require.NotPanics(t, violate)
		require.Zero(t, buf.Len())
		return
	}
	require.Panics(t, violate)
	require.Contains(t, buf.String(), "op=At")
	require.Contains(t, buf.String(), "index=3")
	require.Contains(t, buf.String(), "len=2")
}
