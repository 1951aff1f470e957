package validators

import (
	"strings"
	"time"
)

const BirthDateLayout = "02/01/2006"

// IsDate reports whether s is a real calendar day written DD/MM/YYYY.
func IsDate(s string) bool {
	_, err := time.Parse(BirthDateLayout, strings.TrimSpace(s))
	return err == nil
}
