package morton

// KeyFunc maps a payload value (e.g. a triangle index) to its 32-bit sort
// key (e.g. a Morton code).
type KeyFunc func(value uint32) uint32

// RadixSort32 stably sorts src (which must hold num payload values, commonly
// the identity permutation 0..num-1) into dst by ascending key(value), using
// a three-pass LSD radix sort over bit windows [0,10), [10,21), [21,32) —
// 1024/2048/2048 buckets. src is used as scratch space for the middle pass
// and is left mutated; the final sorted order is written to dst.
//
// Histograms are turned into an exclusive prefix sum, stored off-by-one
// (bucket[i] = runningSum-1) so that a pre-increment at insertion time
// yields the correct slot. Relies on uint32 wraparound: 0-1 wraps to the
// max value, and incrementing it lands back on 0.
func RadixSort32(dst, src []uint32, key KeyFunc) {
	num := len(src)
	if num == 0 {
		return
	}

	var histogram0 [1024]uint32
	var histogram1 [2048]uint32
	var histogram2 [2048]uint32

	for _, v := range src {
		k := key(v)
		histogram0[(k>>0)&1023]++
		histogram1[(k>>10)&2047]++
		histogram2[(k>>21)&2047]++
	}

	var sum0, sum1, sum2 uint32
	for i := 0; i < 2048; i++ {
		if i < 1024 {
			t := histogram0[i] + sum0
			histogram0[i] = sum0 - 1
			sum0 = t
		}
		t1 := histogram1[i] + sum1
		histogram1[i] = sum1 - 1
		sum1 = t1

		t2 := histogram2[i] + sum2
		histogram2[i] = sum2 - 1
		sum2 = t2
	}

	// Pass 1: low 10 bits, src -> dst.
	for _, value := range src {
		k := key(value)
		bucket := (k >> 0) & 1023
		histogram0[bucket]++
		dst[histogram0[bucket]] = value
	}

	// Pass 2: middle 11 bits, dst -> src (in place reuse of src as scratch).
	for _, value := range dst {
		k := key(value)
		bucket := (k >> 10) & 2047
		histogram1[bucket]++
		src[histogram1[bucket]] = value
	}

	// Pass 3: high 11 bits, src -> dst.
	for _, value := range src {
		k := key(value)
		bucket := (k >> 21) & 2047
		histogram2[bucket]++
		dst[histogram2[bucket]] = value
	}
}
