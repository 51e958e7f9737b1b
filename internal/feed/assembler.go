// Package feed assembles the home feed.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
	"github.com/DjordjeVuckovic/fhs-news/internal/enrich"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/pkg/fanout"
	"github.com/DjordjeVuckovic/fhs-news/pkg/pagination"
)

type Assembler struct {
	reader   storage.Reader
	enricher *enrich.Enricher
}

func NewAssembler(reader storage.Reader, enricher *enrich.Enricher) *Assembler {
	return &Assembler{
		reader:   reader,
		enricher: enricher,
	}
}

type load func(ctx context.Context) (domain.Item, error)

// BuildHome returns one page of the home feed. The full feed is, top to bottom:
//
//	lunch
//	alerts, newest file name first
//	weather
//	articles, folder names ascending
//
// Every part is read concurrently; any failed read fails the whole feed.
func (a *Assembler) BuildHome(ctx context.Context, page pagination.OffsetRequest) ([]domain.Item, error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidation(err.Error())
	}

	alerts, err := a.reader.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	slices.Sort(alerts)
	slices.Reverse(alerts)

	articles, err := a.reader.ListCollection(ctx, storage.Articles)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", storage.Articles, err)
	}
	slices.Sort(articles)

	slog.Debug("Assembling home feed", "alerts", len(alerts), "articles", len(articles),
		"position", page.Position, "quantity", page.Quantity)

	plan := make([]load, 0, len(alerts)+len(articles)+2)
	plan = append(plan, a.extra(storage.Lunch))
	for _, name := range alerts {
		plan = append(plan, a.alert(name))
	}
	plan = append(plan, a.extra(storage.Weather))
	for _, id := range articles {
		plan = append(plan, a.article(id))
	}

	items, err := fanout.Collect(ctx, len(plan), func(ctx context.Context, i int) (domain.Item, error) {
		return plan[i](ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("assemble home feed: %w", err)
	}

	return pagination.Slice(items, page.Position, page.Quantity), nil
}

func (a *Assembler) extra(name storage.ExtraName) load {
	return func(ctx context.Context) (domain.Item, error) {
		return a.reader.ReadExtra(ctx, name)
	}
}

func (a *Assembler) alert(name string) load {
	return func(ctx context.Context) (domain.Item, error) {
		return a.reader.ReadAlert(ctx, name)
	}
}

func (a *Assembler) article(id string) load {
	return func(ctx context.Context) (domain.Item, error) {
		item, err := a.reader.ReadRecord(ctx, storage.Articles, id)
		if err != nil {
			return nil, err
		}
		return a.enricher.Enrich(item), nil
	}
}
