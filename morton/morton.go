package morton

// spread3 interleaves the low 10 bits of x with two zero bits between each
// source bit.
func spread3(x uint32) uint32 {
	x &= 0x3ff
	x = (x ^ (x << 16)) & 0xff0000ff
	x = (x ^ (x << 8)) & 0x0300f00f
	x = (x ^ (x << 4)) & 0x030c30c3
	x = (x ^ (x << 2)) & 0x09249249
	return x
}

// Code3 computes the 30-bit interleaved Morton code for a 3D integer
// coordinate, each axis masked to its low 10 bits ([0,1023]); higher bits
// are discarded, not saturated.
func Code3(x, y, z uint32) uint32 {
	return spread3(x) | (spread3(y) << 1) | (spread3(z) << 2)
}
