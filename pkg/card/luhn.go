package card

// Luhn reports whether a digit string carries a correct Luhn check digit.
// The rightmost digit is never doubled. Strings that are empty or contain
// anything but ASCII digits are rejected.
func Luhn(number string) bool {
	if number == "" || !allDigits(number) {
		return false
	}
	return luhnSum(number, false)%10 == 0
}

// CheckDigit computes the Luhn check digit that makes partial+digit valid.
// It returns false when partial is empty or not all digits.
//
// Example:
//
//	d, _ := card.CheckDigit("453201511283036") // '6'
func CheckDigit(partial string) (byte, bool) {
	if partial == "" || !allDigits(partial) {
		return 0, false
	}
	// The check digit will occupy the rightmost slot, so the last digit of
	// partial is the first one to double.
	sum := luhnSum(partial, true)
	return byte('0' + (10-sum%10)%10), true
}

func luhnSum(number string, double bool) int {
	sum := 0
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum
}
