// Package enrich rewrites relative attachment names on items into absolute URLs.
package enrich

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
)

// clubAttachmentID is the id segment used for every club attachment URL.
// Club attachments currently all live under clubs/0/ whatever the club id is.
const clubAttachmentID = 0

// Enricher returns a copy of each item with attachment names prefixed by the
// base URL. It is not idempotent: apply it once per item read.
type Enricher struct {
	base string
}

func New(attachmentsURL string) *Enricher {
	return &Enricher{base: strings.TrimRight(attachmentsURL, "/")}
}

func (e *Enricher) Enrich(item domain.Item) domain.Item {
	switch v := item.(type) {
	case domain.Article:
		id := strconv.Itoa(v.ArticleID)
		v.ArticleThumbnail = e.url("articles", id, v.ArticleThumbnail)
		v.TopperIcon = e.url("articles", id, v.TopperIcon)
		return v
	case domain.Club:
		v.ClubThumbnail = e.url("clubs", strconv.Itoa(clubAttachmentID), v.ClubThumbnail)
		return v
	default:
		return item
	}
}

func (e *Enricher) url(kind, id, name string) string {
	return e.base + "/" + kind + "/" + id + "/" + name
}
