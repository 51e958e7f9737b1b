package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItem_Variants(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ItemType
	}{
		{name: "article", data: `{"itemType":"Article","articleId":3,"postedTime":10}`, want: ItemTypeArticle},
		{name: "club", data: `{"itemType":"Club","clubThumbnail":"a.png"}`, want: ItemTypeClub},
		{name: "weather", data: `{"itemType":"Weather","temp":71}`, want: "Weather"},
		{name: "untagged", data: `{"menu":["pizza"]}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := DecodeItem([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Type())
		})
	}
}

func TestDecodeItem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "truncated", data: `{"itemType":"Article",`},
		{name: "array", data: `[1,2,3]`},
		{name: "null", data: `null`},
		{name: "article without id", data: `{"itemType":"Article","postedTime":10}`},
		{name: "article with string time", data: `{"itemType":"Article","articleId":1,"postedTime":"yesterday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeItem([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidItem))
		})
	}
}

func TestDecodeArticle_WrongType(t *testing.T) {
	_, err := DecodeArticle([]byte(`{"itemType":"Club","articleId":1,"postedTime":1}`))
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestArticle_KeepsUnknownFields(t *testing.T) {
	data := `{"itemType":"Article","articleId":7,"postedTime":100,"articleThumbnail":"t.png","topperIcon":"i.png","headline":"Weather Alert","likes":4}`

	a, err := DecodeArticle([]byte(data))
	require.NoError(t, err)

	out, err := json.Marshal(a)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "Weather Alert", got["headline"])
	assert.Equal(t, float64(4), got["likes"])
	assert.Equal(t, float64(7), got["articleId"])
	assert.Equal(t, "t.png", got["articleThumbnail"])
}

func TestArticle_SearchableFields(t *testing.T) {
	data := `{"itemType":"Article","articleId":7,"postedTime":100,"title":"Homecoming","headline":"Weather Alert","likes":4}`

	a, err := DecodeArticle([]byte(data))
	require.NoError(t, err)

	fields := a.SearchableFields()
	assert.Contains(t, fields, "Homecoming")
	assert.Contains(t, fields, "Weather Alert")
	assert.Contains(t, fields, "Article")
	assert.NotContains(t, fields, "", "absent thumbnails are skipped")
}

func TestRecords_RoundTripAsStored(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		decode func([]byte) (Item, error)
	}{
		{
			name: "article with empty title and paragraph body",
			data: `{"itemType":"Article","articleId":2,"postedTime":5,"articleThumbnail":"t.png","topperIcon":"i.png",` +
				`"title":"","subtitle":"","body":["First.","Second."],"author":null}`,
			decode: func(b []byte) (Item, error) { return DecodeArticle(b) },
		},
		{
			name:   "club with zero id and empty description",
			data:   `{"itemType":"Club","clubId":0,"clubName":"Chess","clubDescription":"","clubThumbnail":"c.png"}`,
			decode: func(b []byte) (Item, error) { return DecodeClub(b) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := tt.decode([]byte(tt.data))
			require.NoError(t, err)

			out, err := json.Marshal(item)
			require.NoError(t, err)
			assert.JSONEq(t, tt.data, string(out))
		})
	}
}

func TestExtra_MarshalsAsStored(t *testing.T) {
	e, err := DecodeExtra([]byte("{\n  \"itemType\": \"Lunch\",\n  \"menu\": [\"tacos\"]\n}"))
	require.NoError(t, err)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemType":"Lunch","menu":["tacos"]}`, string(out))
	assert.Equal(t, ItemType("Lunch"), e.Type())
}
