package mail

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferenceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^TR-%d-[0-9A-F]{6}$`, time.Now().Year()))

	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, GenerateReferenceNumber())
	}
}

func TestNewlineToBrEscapesHTMLFirst(t *testing.T) {
	out := string(NewlineToBr("hello\n<script>"))

	assert.Equal(t, "hello<br>&lt;script&gt;", out)
}
