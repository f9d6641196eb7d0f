package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// CardAccountNumber reports whether s looks like a valid card account
// number: digits only (spaces ignored) passing the Luhn checksum.
func CardAccountNumber(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}
