package scene

import "encoding/binary"

// SpineCustomType is the custom type code that legacy spine nodes are
// folded into.
var SpineCustomType = MurmurHash32("Spine")

const (
	murmurM = 0x5bd1e995
	murmurR = 24
)

func murmurMix(h, k uint32) uint32 {
	k *= murmurM
	k ^= k >> murmurR
	k *= murmurM
	h *= murmurM
	return h ^ k
}

// MurmurHash32 is the 32-bit MurmurHash2A of s with a zero seed, the hash
// the runtime uses for custom node type codes.
func MurmurHash32(s string) uint32 {
	data := []byte(s)
	var h uint32

	for len(data) >= 4 {
		h = murmurMix(h, binary.LittleEndian.Uint32(data))
		data = data[4:]
	}

	var t uint32
	switch len(data) {
	case 3:
		t ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		t ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		t ^= uint32(data[0])
	}
	h = murmurMix(h, t)
	h = murmurMix(h, uint32(len(s)))

	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15
	return h
}
