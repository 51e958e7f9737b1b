package router

// Config is fixed at startup and shared read-only by every handler.
type Config struct {
	// AttachmentsURL is the base that relative thumbnails are resolved against.
	AttachmentsURL string
	// RedirectURL is where GET / sends clients.
	RedirectURL string
	// PagesDir holds static files, the favicon and error pages.
	PagesDir string
}
