package common

// WipeByteArray zeroes the buffer in place. Used to drop password bytes
// from memory as soon as they have been sent upstream.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
