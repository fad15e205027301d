package squareroot

// Scattered returns count radicands spread over the whole uint32 range.
// The same salt always gives the same samples.
func Scattered(count int, salt uint32) (ret []Sample) {
	ret = make([]Sample, count)
	var m = salt
	for i := range ret {
		m = mix(m + uint32(i))
		ret[i] = Sample(m)
	}
	return
}

// mix is a xorshift mixer with prime shift amounts.
func mix(m uint32) uint32 {
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19
	return m
}
