package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify_Empty(t *testing.T) {
	r := Verify("   \n\t ")
	assert.True(t, r.Empty)
	assert.False(t, r.OK())
	assert.Equal(t, []string{"extracted text is empty"}, r.Issues())
}

func TestVerify_GoodText(t *testing.T) {
	text := "Jane Doe\njane@example.com\n\nExperience\n" + strings.Repeat("Built resilient backend services in Go. ", 10)
	r := Verify(text)
	assert.True(t, r.OK(), "issues: %v", r.Issues())
}

func TestVerify_ShortAndNoKeywords(t *testing.T) {
	r := Verify("hello world")
	assert.True(t, r.TooShort)
	assert.True(t, r.MissingKeywords)
	assert.False(t, r.OK())
	assert.Len(t, r.Issues(), 2)
}

func TestVerify_LowPrintableRatio(t *testing.T) {
	junk := strings.Repeat("\x00\x01\x02\x03", 100) + "experience"
	r := Verify(junk)
	assert.True(t, r.LowPrintable)
	assert.False(t, r.OK())
}
