package sem

import "strings"

// shiftHash is a cyclic shift-xor hash over the bytes of a name.
func shiftHash(key string, size uint) uint {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = (h << 5) ^ uint32(key[i])
	}

	return uint(h) % size
}

// compareNames orders names byte-wise.
func compareNames(a, b string) int {
	return strings.Compare(a, b)
}
