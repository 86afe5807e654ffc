package unireader

// Buffered returns the number of bytes the Decoder is holding.
func (d *Decoder) Buffered() int {
	return len(d.buf)
}
