package testutil

import (
	"os"
	"testing"
)

const envUseCI = "MACSUM_CI"

// SkipCI skips long-running tests unless MACSUM_CI is set.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip MACSUM CI")
	}
}
