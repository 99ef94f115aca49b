package cmd

import "testing"

// resolve without a position and without --shortcuts must fail so a
// misused invocation exits non-zero.
func TestRunResolve_NoArgsIsError(t *testing.T) {
	if err := runResolve(resolveCmd, nil); err == nil {
		t.Error("runResolve with no arguments: expected error")
	}
}
