package app

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// channelByte maps a 0..1 color component to a byte, clamping out-of-range
// values coming from hand-edited settings files.
func channelByte(v float64) uint8 {
	return uint8(clamp01(v) * 255)
}

// lerp maps t in 0..1 onto the min..max range.
func lerp(min, max, t float64) float64 {
	return min + (max-min)*clamp01(t)
}

// unlerp is the inverse of lerp: the 0..1 position of v within min..max.
func unlerp(min, max, v float64) float64 {
	if max == min {
		return 0
	}
	return clamp01((v - min) / (max - min))
}
