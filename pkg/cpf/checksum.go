package cpf

import "regexp"

var baseRegex = regexp.MustCompile(`^[0-9]{9}$`)

// CheckDigits computes the two check digits for a nine digit base.
//
// Each digit uses the published weights, descending from len+1 to 2 over the
// digits that precede it (10..2 for the first, 11..2 for the second). The
// digit is 11 minus the sum modulo 11, or 0 when the remainder is below 2.
func CheckDigits(base string) (string, error) {
	if !baseRegex.MatchString(base) {
		return "", ErrInvalidDigitPattern
	}

	var digits [10]int
	for i := range 9 {
		digits[i] = int(base[i] - '0')
	}
	digits[9] = checkDigit(digits[:9])
	second := checkDigit(digits[:])

	return string([]byte{byte('0' + digits[9]), byte('0' + second)}), nil
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
