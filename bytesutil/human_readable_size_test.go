package bytesutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoFormat(t *testing.T) {
	tests := map[uint64]string{
		0:          "0 B",
		1:          "1 B",
		1023:       "1023 B",
		1024:       "1.00 KB",
		2140:       "2.09 KB",
		1048575:    "1024.00 KB",
		1048576:    "1.00 MB",
		4404019:    "4.20 MB",
		2828382:    "2.70 MB",
		1073741824: "1.00 GB",
		5 * TEBI:   "5.00 TB",
	}
	for value, expected := range tests {
		assert.Equal(t, expected, AutoFormat(value), "value=%d", value)
	}
}
