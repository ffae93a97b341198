package domain

// Zero overwrites a byte slice with zeros so raw entropy does not linger in
// memory after the token material has been encoded.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
