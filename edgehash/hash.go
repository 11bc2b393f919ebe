package edgehash

import (
	"math"

	"github.com/vireo-graphics/trimesh-cluster/vec3"
)

// mix runs the MurmurHash3-32 word-transform-then-accumulate step over a
// single 32-bit word:
//
//	w *= 0xcc9e2d51; w = rotl15(w); w *= 0x1b873593;
//	h ^= w; h = rotl13(h); h = 5*h + 0xe6546b64;
func mix(h, w uint32) uint32 {
	w *= 0xcc9e2d51
	w = rotl(w, 15)
	w *= 0x1b873593

	h ^= w
	h = rotl(h, 13)
	h = h*5 + 0xe6546b64
	return h
}

func rotl(x uint32, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

// finalize applies MurmurHash3-32's finalizer to h.
func finalize(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// murmur32 combines an arbitrary sequence of 32-bit words into one hash.
func murmur32(words ...uint32) uint32 {
	var h uint32
	for _, w := range words {
		h = mix(h, w)
	}
	return finalize(h)
}

// floatBits returns the IEEE-754 bit pattern of f, normalizing -0 to +0 so
// that bitwise-equal positions (after normalization) always hash equal.
func floatBits(f float32) uint32 {
	if f == 0 {
		return 0
	}
	return math.Float32bits(f)
}

// HashPosition computes the deterministic position hash: the three
// coordinates' bit patterns (with -0 normalized to +0) mixed into one word.
func HashPosition(p vec3.Vec3) uint32 {
	return murmur32(floatBits(p.X), floatBits(p.Y), floatBits(p.Z))
}

// Cycle3 returns the cyclic successor of half-edge e within its triangle:
// e - (e%3) + ((1<<(e%3)) & 3), i.e. 0->1->2->0 within each triple.
func Cycle3(e uint32) uint32 {
	mod3 := e % 3
	return e - mod3 + ((1 << mod3) & 3)
}
