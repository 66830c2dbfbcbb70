package fixedstr

// DigitCount returns the number of decimal digits in x: floor(log10(x))+1
// for x > 0, and 1 for x == 0.
func DigitCount(x uint64) int {
	if x < 10 {
		return 1
	}
	return 1 + DigitCount(x/10)
}

// Itoa converts x to its canonical base-10 String, writing digits right to
// left by repeated division. Unsigned domain only; Atoi inverts it exactly.
func Itoa(x uint64) String {
	n := DigitCount(x)
	buf := make([]byte, n+1)
	buf[n] = Terminator
	if x == 0 {
		buf[0] = '0'
		return String{raw: string(buf)}
	}
	for i, v := n-1, x; v > 0; v /= 10 {
		buf[i] = byte(v%10) + '0'
		i--
	}
	return String{raw: string(buf)}
}
