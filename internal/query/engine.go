// Package query implements listing and search over folder-backed collections.
package query

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
	"github.com/DjordjeVuckovic/fhs-news/internal/enrich"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/pkg/fanout"
	"github.com/DjordjeVuckovic/fhs-news/pkg/pagination"
)

type Engine struct {
	reader   storage.Reader
	enricher *enrich.Enricher
}

func NewEngine(reader storage.Reader, enricher *enrich.Enricher) *Engine {
	return &Engine{
		reader:   reader,
		enricher: enricher,
	}
}

// List returns one page of the collection in folder order. Every record is
// read and enriched before the page is cut.
func (e *Engine) List(ctx context.Context, c storage.Collection, page pagination.OffsetRequest) ([]domain.Item, error) {
	ids, err := e.reader.ListCollection(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c, err)
	}
	SortFolders(ids)

	slog.Debug("Listing collection", "collection", c, "total", len(ids), "position", page.Position, "quantity", page.Quantity)

	items, err := fanout.Map(ctx, ids, func(ctx context.Context, id string) (domain.Item, error) {
		item, err := e.reader.ReadRecord(ctx, c, id)
		if err != nil {
			return nil, err
		}
		return e.enricher.Enrich(item), nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}

	return pagination.Slice(items, page.Position, page.Quantity), nil
}

// SearchDate returns every article posted within r, oldest first. Results are
// not paginated.
func (e *Engine) SearchDate(ctx context.Context, r DateRange) ([]domain.Article, error) {
	slog.Debug("Searching articles by date", "range_start", r.Start, "range_end", r.End)

	articles, err := e.readArticles(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if r.Contains(a.PostedTime) {
			matched = append(matched, e.enrichArticle(a))
		}
	}

	sortByPostedTime(matched)
	return matched, nil
}

// SearchText returns the requested page of articles having any string field
// that contains text, case-insensitively. The page is cut in folder order and
// then sorted by postedTime. An empty text matches every article.
func (e *Engine) SearchText(ctx context.Context, text string, page pagination.OffsetRequest) ([]domain.Article, error) {
	needle := strings.ToLower(text)

	articles, err := e.readArticles(ctx)
	if err != nil {
		return nil, err
	}

	var hits []domain.Article
	for _, a := range articles {
		if matches(a, needle) {
			hits = append(hits, a)
		}
	}
	slog.Debug("Searching articles by text", "query", text, "hits", len(hits))

	hits = pagination.Slice(hits, page.Position, page.Quantity)
	out := make([]domain.Article, len(hits))
	for i, a := range hits {
		out[i] = e.enrichArticle(a)
	}

	sortByPostedTime(out)
	return out, nil
}

// readArticles reads every article, unenriched, in lexical folder order.
func (e *Engine) readArticles(ctx context.Context) ([]domain.Article, error) {
	ids, err := e.reader.ListCollection(ctx, storage.Articles)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", storage.Articles, err)
	}
	slices.Sort(ids)

	articles, err := fanout.Map(ctx, ids, func(ctx context.Context, id string) (domain.Article, error) {
		item, err := e.reader.ReadRecord(ctx, storage.Articles, id)
		if err != nil {
			return domain.Article{}, err
		}
		a, ok := item.(domain.Article)
		if !ok {
			return domain.Article{}, fmt.Errorf("%w: %s %q is %q", storage.ErrCorrupt, storage.Articles, id, item.Type())
		}
		return a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", storage.Articles, err)
	}
	return articles, nil
}

func (e *Engine) enrichArticle(a domain.Article) domain.Article {
	return e.enricher.Enrich(a).(domain.Article)
}

func matches(a domain.Article, needle string) bool {
	for _, f := range a.SearchableFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortByPostedTime(articles []domain.Article) {
	slices.SortStableFunc(articles, func(a, b domain.Article) int {
		return cmp.Compare(a.PostedTime, b.PostedTime)
	})
}
