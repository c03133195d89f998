package validate

import (
	"math/rand"
	"regexp"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

var targetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.)?instagram\.com/[A-Za-z0-9_.]+/?`),
	regexp.MustCompile(`^https?://(www\.)?tiktok\.com/@[A-Za-z0-9_.]+`),
	regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/`),
	regexp.MustCompile(`^https?://(t\.me|telegram\.me)/[A-Za-z0-9_]+`),
}

// IsTarget reports whether s points at a supported platform.
func IsTarget(s string) bool {
	for _, p := range targetPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// IsQuantity reports whether q is inside the allowed order range.
func IsQuantity(q, min, max int) bool {
	return q >= min && q <= max
}

// IsReferralCode reports whether s is a Luhn-valid referral code.
func IsReferralCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

const referralCodeLen = 10

// NewReferralCode produces a random Luhn-valid digit string. The payload is
// random and the final digit is chosen to satisfy the checksum.
func NewReferralCode() string {
	code := make([]byte, 0, referralCodeLen)
	for i := 0; i < referralCodeLen-1; i++ {
		code = append(code, byte('0'+rand.Intn(10)))
	}
	for d := 0; d < 10; d++ {
		candidate := string(code) + strconv.Itoa(d)
		if goluhn.Validate(candidate) == nil {
			return candidate
		}
	}
	return string(code) + "0"
}
