package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
	"github.com/DjordjeVuckovic/fhs-news/internal/enrich"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/fhs-news/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(r *in_mem.InMemReader) {
	r.PutExtra(storage.Lunch, []byte(`{"itemType":"Lunch","name":"lunch"}`))
	r.PutExtra(storage.Weather, []byte(`{"itemType":"Weather","name":"weather"}`))
	r.PutAlert("2024-03-01.json", []byte(`{"itemType":"Alert","name":"alert-0301"}`))
	r.PutAlert("2024-05-01.json", []byte(`{"itemType":"Alert","name":"alert-0501"}`))
	r.PutAlert("2024-04-01.json", []byte(`{"itemType":"Alert","name":"alert-0401"}`))
	for _, id := range []string{"3", "1", "2"} {
		r.PutRecord(storage.Articles, id,
			[]byte(fmt.Sprintf(`{"itemType":"Article","articleId":%s,"postedTime":0,"articleThumbnail":"t.png","topperIcon":"i.png"}`, id)))
	}
}

// label names an item by its "name" field or its article id.
func label(t *testing.T, item domain.Item) string {
	t.Helper()

	if a, ok := item.(domain.Article); ok {
		return fmt.Sprintf("article-%d", a.ArticleID)
	}
	data, err := json.Marshal(item)
	require.NoError(t, err)
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &v))
	return v.Name
}

func labels(t *testing.T, items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = label(t, it)
	}
	return out
}

var fullFeed = []string{
	"lunch",
	"alert-0501", "alert-0401", "alert-0301",
	"weather",
	"article-1", "article-2", "article-3",
}

func TestBuildHome_Order(t *testing.T) {
	r := in_mem.NewInMemReader()
	seed(r)
	a := NewAssembler(r, enrich.New("https://cdn.example.com"))

	got, err := a.BuildHome(context.Background(), pagination.OffsetRequest{Position: 0, Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, fullFeed, labels(t, got))

	art := got[5].(domain.Article)
	assert.Equal(t, "https://cdn.example.com/articles/1/t.png", art.ArticleThumbnail)
}

func TestBuildHome_OrderIndependentOfReadTiming(t *testing.T) {
	for trial := range 10 {
		rng := rand.New(rand.NewPCG(uint64(trial), 7))
		delays := make(map[string]time.Duration)
		r := in_mem.NewInMemReader(in_mem.WithDelay(func(key string) time.Duration {
			return delays[key]
		}))
		seed(r)
		for _, key := range []string{
			"extras/lunch", "extras/weather",
			"alerts/2024-03-01.json", "alerts/2024-04-01.json", "alerts/2024-05-01.json",
			"articles/1", "articles/2", "articles/3",
		} {
			delays[key] = time.Duration(rng.IntN(5)) * time.Millisecond
		}
		a := NewAssembler(r, enrich.New("https://cdn.example.com"))

		got, err := a.BuildHome(context.Background(), pagination.OffsetRequest{Quantity: 100})
		require.NoError(t, err)
		assert.Equal(t, fullFeed, labels(t, got), "trial %d", trial)
	}
}

func TestBuildHome_PaginatesCombinedFeed(t *testing.T) {
	r := in_mem.NewInMemReader()
	seed(r)
	a := NewAssembler(r, enrich.New("https://cdn.example.com"))

	for offset := 0; offset <= len(fullFeed)+1; offset++ {
		for limit := 0; limit <= len(fullFeed)+1; limit++ {
			got, err := a.BuildHome(context.Background(), pagination.OffsetRequest{Position: offset, Quantity: limit})
			require.NoError(t, err)
			assert.Equal(t, pagination.Slice(fullFeed, offset, limit), labels(t, got), "offset=%d limit=%d", offset, limit)
		}
	}
}

func TestBuildHome_InvalidPage(t *testing.T) {
	a := NewAssembler(in_mem.NewInMemReader(), enrich.New("https://cdn.example.com"))

	for _, page := range []pagination.OffsetRequest{{Position: -1, Quantity: 5}, {Position: 0, Quantity: -1}} {
		_, err := a.BuildHome(context.Background(), page)
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
}

func TestBuildHome_FailuresAreFatal(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *in_mem.InMemReader)
		wantErr error
	}{
		{
			name:    "corrupt lunch",
			mutate:  func(r *in_mem.InMemReader) { r.PutExtra(storage.Lunch, []byte(`{`)) },
			wantErr: storage.ErrCorrupt,
		},
		{
			name:    "corrupt alert",
			mutate:  func(r *in_mem.InMemReader) { r.PutAlert("2024-06-01.json", []byte(`nope`)) },
			wantErr: storage.ErrCorrupt,
		},
		{
			name: "corrupt article beyond the page",
			mutate: func(r *in_mem.InMemReader) {
				r.PutRecord(storage.Articles, "9", []byte(`{"itemType":"Article"}`))
			},
			wantErr: storage.ErrCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := in_mem.NewInMemReader()
			seed(r)
			tt.mutate(r)
			a := NewAssembler(r, enrich.New("https://cdn.example.com"))

			got, err := a.BuildHome(context.Background(), pagination.OffsetRequest{Quantity: 1})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestBuildHome_MissingWeatherIsFatal(t *testing.T) {
	r := in_mem.NewInMemReader()
	r.PutExtra(storage.Lunch, []byte(`{"name":"lunch"}`))
	a := NewAssembler(r, enrich.New("https://cdn.example.com"))

	_, err := a.BuildHome(context.Background(), pagination.OffsetRequest{Quantity: 5})
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}
