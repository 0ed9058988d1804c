package security

import (
	"crypto/rand"
	"math/big"
)

// OTPCodeLength is the number of decimal digits in a one-time code.
const OTPCodeLength = 6

var decimalBase = big.NewInt(10)

// GenerateOTPCode returns a string of exactly six decimal digits, each drawn
// independently from crypto/rand so codes are not predictable across calls.
func GenerateOTPCode() (string, error) {
	code := make([]byte, OTPCodeLength)
	for index := range code {
		digit, err := rand.Int(rand.Reader, decimalBase)
		if err != nil {
			return "", err
		}
		code[index] = byte('0' + digit.Int64())
	}
	return string(code), nil
}
