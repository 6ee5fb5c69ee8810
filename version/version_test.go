package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", GetVersion())

	v := &version{majorVersion: 2, minorVersion: 3, patchVersion: 4}
	gitCommit = "1a2b3c4d5e6f"
	defer func() { gitCommit = "" }()
	assert.Equal(t, "2.3.4+1a2b3c4d", v.String())
	// cached after the first call
	gitCommit = ""
	assert.Equal(t, "2.3.4+1a2b3c4d", v.String())
}
