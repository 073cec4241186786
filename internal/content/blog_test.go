package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedManifestLoads(t *testing.T) {
	blog, err := LoadBlog("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	posts := blog.Posts(Query{})
	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}
	if posts[0].Slug != "ai-readiness-checklist" {
		t.Fatalf("expected newest post first, got %s", posts[0].Slug)
	}
	for _, p := range posts {
		if p.Body != "" {
			t.Fatalf("list entries must not carry bodies")
		}
	}

	full, ok := blog.Post("data-foundations")
	if !ok {
		t.Fatalf("expected data-foundations to exist")
	}
	if full.Body == "" {
		t.Fatalf("expected full post to carry a body")
	}
	if full.Category != DefaultCategory || full.Author != DefaultAuthor || full.ReadTime != DefaultReadTime {
		t.Fatalf("expected defaults on data-foundations, got %+v", full)
	}
}

func TestParseBlogDefaults(t *testing.T) {
	blog, err := ParseBlog([]byte(`
posts:
  - slug: bare
  - title: "Hello, World: Part 2!"
    date: "2026-05-01"
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	posts := blog.Posts(Query{})
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "hello-world-part-2" {
		t.Fatalf("expected slug derived from title, got %q", posts[0].Slug)
	}

	bare, _ := blog.Post("bare")
	if bare.Title != DefaultTitle || bare.Category != DefaultCategory || bare.Author != DefaultAuthor || bare.ReadTime != DefaultReadTime {
		t.Fatalf("expected defaults, got %+v", bare)
	}
	if bare.Tags == nil {
		t.Fatalf("expected empty tag list, not nil")
	}
}

func TestParseBlogRejectsBadManifests(t *testing.T) {
	cases := map[string]string{
		"duplicate slug": "posts:\n  - slug: a\n  - slug: a\n",
		"no identity":    "posts:\n  - excerpt: nothing else\n",
		"bad yaml":       "posts: [",
	}
	for name, raw := range cases {
		if _, err := ParseBlog([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadBlogFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.yaml")
	if err := os.WriteFile(path, []byte("posts:\n  - slug: only\n    tags: [go]\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	blog, err := LoadBlog(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if tags := blog.Tags(); len(tags) != 1 || tags[0] != "go" {
		t.Fatalf("unexpected tags %v", tags)
	}

	if _, err := LoadBlog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestBlogSearchAndCategory(t *testing.T) {
	blog, err := LoadBlog("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	got := blog.Posts(Query{Search: "roi"})
	if len(got) != 1 || got[0].Slug != "calculating-ai-roi" {
		t.Fatalf("unexpected search result %+v", got)
	}

	got = blog.Posts(Query{Facets: map[string]string{FacetCategory: "general"}})
	if len(got) != 1 || got[0].Slug != "data-foundations" {
		t.Fatalf("expected defaulted category to be filterable, got %+v", got)
	}
}
