package util

// SpliceMove removes the element at from and reinserts it at to, returning a
// new slice. Out-of-range indices and from == to leave the order unchanged.
func SpliceMove(ids []string, from, to int) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	if from == to || from < 0 || to < 0 || from >= len(ids) || to >= len(ids) {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}
