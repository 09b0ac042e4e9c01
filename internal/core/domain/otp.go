package domain

import "regexp"

// OTPLength is the number of digits in a one-time passcode.
const OTPLength = 5

var otpPattern = regexp.MustCompile(`^[0-9]{5}$`)

// ValidateOTP checks the code locally. A violation means the backend is
// never contacted with it.
func ValidateOTP(code string) error {
	if !otpPattern.MatchString(code) {
		return ErrInvalidOTP
	}
	return nil
}
