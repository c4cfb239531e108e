package domain

// Zero clears key material in place once it is no longer needed.
func Zero(b []byte) {
	clear(b)
}
