// Package sanitize cleans rich-text HTML from the mobile editor using bluemonday.
package sanitize

import (
	"diary/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/fx"
)

// htmlSanitizer implements service.ContentSanitizer with a bluemonday policy.
type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer builds the sanitizer used for diary entry content. The
// policy keeps the formatting the editor emits and strips everything active.
func NewContentSanitizer() service.ContentSanitizer {
	policy := bluemonday.UGCPolicy()

	return &htmlSanitizer{policy: policy}
}

// Sanitize returns safe HTML. Idempotent: sanitizing already-clean content
// returns it unchanged.
func (s *htmlSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

// Module provides the content sanitizer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewContentSanitizer),
)
