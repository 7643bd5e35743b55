package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsScriptTags(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<p>Dear diary</p><script>alert("xss")</script>`)

	assert.Equal(t, "<p>Dear diary</p>", got)
}

func TestSanitize_KeepsEditorFormatting(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := `<p>Today was <strong>great</strong> and <em>sunny</em>.</p><ul><li>walked</li><li>wrote</li></ul>`
	got := sanitizer.Sanitize(input)

	assert.Equal(t, input, got)
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<p onclick="steal()">hello</p>`)

	assert.Equal(t, "<p>hello</p>", got)
}

func TestSanitize_Idempotent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	once := sanitizer.Sanitize(`<p>note <b>bold</b> <img src="x" onerror="x()"></p>`)
	twice := sanitizer.Sanitize(once)

	assert.Equal(t, once, twice)
}
