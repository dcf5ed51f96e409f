package shtc1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC8_DatasheetVectors(t *testing.T) {
	tests := []struct {
		given    []byte
		expected byte
	}{
		// worked example from the datasheet CRC section
		{[]byte{0xBE, 0xEF}, 0x92},
		{[]byte{0x00}, 0xAC},
		{[]byte{0x64, 0x8A}, 0xF6},
		{[]byte{0xA0, 0x9D}, 0x0B},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("% X", test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, crc8(test.given))
			assert.True(t, checkCRC(test.given, test.expected))
		})
	}
}

// Flipping any single bit of the data word must invalidate the checksum.
func TestCRC8_SingleBitErrorDetection(t *testing.T) {
	data := []byte{0xBE, 0xEF}
	sum := crc8(data)
	for i := range data {
		for bit := 0; bit < 8; bit++ {
			corrupted := []byte{data[0], data[1]}
			corrupted[i] ^= 1 << bit
			assert.False(t, checkCRC(corrupted, sum),
				"flip of byte %d bit %d went undetected", i, bit)
		}
	}
}
