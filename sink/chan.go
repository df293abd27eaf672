package sink

// Chan sends every line over the channel. Log blocks until the
// receiver takes the line, or until buffer space is available.
// Sending on a closed Chan panics, so close it only after every
// filter using it is done.
type Chan chan<- string

// Log sends line on c.
func (c Chan) Log(line string) {
	c <- line
}
