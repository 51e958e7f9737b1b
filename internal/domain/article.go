package domain

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/fhs-news/pkg/stringsutil"
)

var articleKeys = []string{"itemType", "articleId", "postedTime", "articleThumbnail", "topperIcon"}

type Article struct {
	ItemType         ItemType `json:"itemType"`
	ArticleID        int      `json:"articleId"`
	PostedTime       int64    `json:"postedTime"`
	ArticleThumbnail string   `json:"articleThumbnail"`
	TopperIcon       string   `json:"topperIcon"`

	// attrs holds every other field as stored; attrsText its string values.
	attrs     attributes
	attrsText []string
}

func (a Article) Type() ItemType { return ItemTypeArticle }

// SearchableFields lists every non-empty string value of the stored record.
func (a Article) SearchableFields() []string {
	fields := []string{string(a.ItemType), a.ArticleThumbnail, a.TopperIcon}
	return stringsutil.RemoveEmptyStrings(append(fields, a.attrsText...))
}

// DecodeArticle decodes and validates an article record.
func DecodeArticle(data []byte) (Article, error) {
	var a Article
	if err := json.Unmarshal(data, &a); err != nil {
		return Article{}, fmt.Errorf("%w: article: %v", ErrInvalidItem, err)
	}
	if a.ItemType != ItemTypeArticle {
		return Article{}, fmt.Errorf("%w: expected itemType %q, got %q", ErrInvalidItem, ItemTypeArticle, a.ItemType)
	}
	if err := requireKeys(data, "articleId", "postedTime"); err != nil {
		return Article{}, fmt.Errorf("%w: article: %v", ErrInvalidItem, err)
	}
	return a, nil
}

type articleFields Article

func (a *Article) UnmarshalJSON(data []byte) error {
	var v articleFields
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	attrs, text, err := splitAttributes(data, articleKeys...)
	if err != nil {
		return err
	}
	v.attrs, v.attrsText = attrs, text
	*a = Article(v)
	return nil
}

func (a Article) MarshalJSON() ([]byte, error) {
	return mergeAttributes(articleFields(a), a.attrs)
}
