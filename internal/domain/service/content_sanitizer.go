package service

// ContentSanitizer cleans rich-text HTML coming from the mobile editor before
// it is persisted or returned to clients.
type ContentSanitizer interface {
	// Sanitize returns safe HTML: the editor's formatting tags survive, script,
	// style and event-handler markup does not. Idempotent.
	Sanitize(rawHTML string) string
}
