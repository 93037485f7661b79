package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAllNumber reports whether s is a pure decimal literal, which is how the
// assembler tells a constant operand like @42 from a symbolic one like @sum.
// An empty string is not a number.
func IsAllNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsNumber(s[i]) {
			return false
		}
	}
	return true
}
