package shtc1

// crc8 calculates the Sensirion CRC-8 checksum: polynomial 0x31
// (x^8 + x^5 + x^4 + 1), initial value 0xFF, no reflection, no final XOR.
// Each 16-bit data word on the wire is followed by one such checksum byte.
func crc8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for range 8 {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ 0x31
			} else {
				crc = crc << 1
			}
		}
	}
	return crc
}

func checkCRC(data []byte, expected byte) bool {
	return crc8(data) == expected
}
