// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package boollog

import "testing"

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Warnf("ambient cell not found for shape %d", 3)
}

func TestDefault_ReturnsUsableLogger(t *testing.T) {
	l := Default()
	l.Warnf("patch %d disconnected from cell graph", 7)
}
