//go:build linux

package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetRealtimePriority_rejectsOutOfRange(t *testing.T) {
	assert.Error(t, SetRealtimePriority(0))
	assert.Error(t, SetRealtimePriority(100))
}
