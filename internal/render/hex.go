// Package render contains the value and line formatting helpers of the report.
package render

const hexDigits = "0123456789ABCDEF"

// NibbleToHex returns the uppercase hex digit of the low nibble of the value.
func NibbleToHex(value uint8) byte {
	return hexDigits[value&0x0F]
}

// MemToHex renders data as uppercase hex digits into a buffer of bufSize bytes
// and returns the rendered string and its length. One byte of the buffer is
// reserved for the terminator, so at most bufSize-1 characters are produced
// and output that does not fit is cut off. A separating space is inserted after
// every grouping bytes, but never after the last byte. A grouping of 0 disables
// the separators.
func MemToHex(data []byte, bufSize, grouping int) (string, int) {
	if bufSize <= 0 || len(data) == 0 {
		return "", 0
	}

	limit := bufSize - 1
	buf := make([]byte, 0, limit)

	for i, b := range data {
		if len(buf) < limit {
			buf = append(buf, NibbleToHex(b>>4))
		}
		if len(buf) < limit {
			buf = append(buf, NibbleToHex(b))
		}

		if grouping != 0 && (i+1)%grouping == 0 && len(buf) < limit && i+1 < len(data) {
			buf = append(buf, ' ')
		}

		if len(buf) >= limit {
			break
		}
	}

	return string(buf), len(buf)
}

// HexString renders data as grouped uppercase hex digits without a size limit.
func HexString(data []byte, grouping int) string {
	s, _ := MemToHex(data, 3*len(data)+1, grouping)
	return s
}
