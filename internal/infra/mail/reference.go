package mail

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// GenerateReferenceNumber returns a customer-facing tracking reference in
// the format TR-YYYY-XXXXXX, e.g. TR-2026-A3F7B2.
func GenerateReferenceNumber() string {
	buf := make([]byte, 3)
	rand.Read(buf)
	return fmt.Sprintf("TR-%d-%s", time.Now().Year(), strings.ToUpper(fmt.Sprintf("%x", buf)))
}
