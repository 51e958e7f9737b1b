package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// ContentTree writes a content store layout into a temporary directory.
type ContentTree struct {
	tb   testing.TB
	Root string
}

func NewContentTree(tb testing.TB) *ContentTree {
	tb.Helper()

	root := tb.TempDir()
	for _, dir := range []string{"articles", "clubs", "alerts", "extras"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			tb.Fatalf("create %s: %v", dir, err)
		}
	}
	return &ContentTree{tb: tb, Root: root}
}

// Article writes articles/<folder>/article.json. fields override the defaults.
func (ct *ContentTree) Article(folder string, postedTime int64, fields map[string]any) *ContentTree {
	ct.tb.Helper()

	id, _ := strconv.Atoi(folder)
	record := map[string]any{
		"itemType":         "Article",
		"articleId":        id,
		"postedTime":       postedTime,
		"articleThumbnail": "thumb.png",
		"topperIcon":       "icon.png",
		"title":            "Article " + folder,
	}
	for k, v := range fields {
		record[k] = v
	}
	return ct.JSON(filepath.Join("articles", folder, "article.json"), record)
}

// Club writes clubs/<folder>/club.json.
func (ct *ContentTree) Club(folder string, fields map[string]any) *ContentTree {
	ct.tb.Helper()

	id, _ := strconv.Atoi(folder)
	record := map[string]any{
		"itemType":      "Club",
		"clubId":        id,
		"clubName":      "Club " + folder,
		"clubThumbnail": "club.png",
	}
	for k, v := range fields {
		record[k] = v
	}
	return ct.JSON(filepath.Join("clubs", folder, "club.json"), record)
}

func (ct *ContentTree) Alert(name string, fields map[string]any) *ContentTree {
	ct.tb.Helper()
	return ct.JSON(filepath.Join("alerts", name), fields)
}

func (ct *ContentTree) Extra(name string, fields map[string]any) *ContentTree {
	ct.tb.Helper()
	return ct.JSON(filepath.Join("extras", name+".json"), fields)
}

func (ct *ContentTree) JSON(rel string, v any) *ContentTree {
	ct.tb.Helper()

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		ct.tb.Fatalf("marshal %s: %v", rel, err)
	}
	return ct.Raw(rel, string(data))
}

// Raw writes data verbatim, creating parent directories.
func (ct *ContentTree) Raw(rel, data string) *ContentTree {
	ct.tb.Helper()

	path := filepath.Join(ct.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		ct.tb.Fatalf("create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		ct.tb.Fatalf("write %s: %v", rel, err)
	}
	return ct
}

// Remove deletes a file or directory below the root.
func (ct *ContentTree) Remove(rel string) *ContentTree {
	ct.tb.Helper()

	if err := os.RemoveAll(filepath.Join(ct.Root, rel)); err != nil {
		ct.tb.Fatalf("remove %s: %v", rel, err)
	}
	return ct
}
