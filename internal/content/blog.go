package content

import (
	"embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed manifest/posts.yaml
var manifestFS embed.FS

const defaultManifest = "manifest/posts.yaml"

// Defaults applied to posts that omit a field.
const (
	DefaultTitle    = "Untitled"
	DefaultCategory = "General"
	DefaultAuthor   = "Editorial Team"
	DefaultReadTime = "5 min read"
)

const dateLayout = "2006-01-02"

// Post is a blog article's metadata and body.
type Post struct {
	Slug     string   `yaml:"slug" json:"slug"`
	Title    string   `yaml:"title" json:"title"`
	Excerpt  string   `yaml:"excerpt" json:"excerpt"`
	Date     string   `yaml:"date" json:"date"`
	Category string   `yaml:"category" json:"category"`
	Author   string   `yaml:"author" json:"author"`
	ReadTime string   `yaml:"readTime" json:"readTime"`
	Tags     []string `yaml:"tags" json:"tags"`
	Featured bool     `yaml:"featured" json:"featured"`
	Body     string   `yaml:"body" json:"body,omitempty"`
}

func (p Post) SearchFields() []string {
	return append([]string{p.Title, p.Excerpt}, p.Tags...)
}

func (p Post) TagValues() []string { return p.Tags }

func (p Post) FacetValue(name string) string {
	if name == FacetCategory {
		return p.Category
	}
	return ""
}

// Summary drops the body for list responses.
func (p Post) Summary() Post {
	p.Body = ""
	return p
}

type manifest struct {
	Posts []Post `yaml:"posts"`
}

// Blog is the immutable set of posts loaded at startup, newest first.
type Blog struct {
	posts  []Post
	bySlug map[string]int
}

// LoadBlog reads the manifest at path, or the embedded manifest when path is empty.
func LoadBlog(path string) (*Blog, error) {
	var (
		raw []byte
		err error
	)
	if strings.TrimSpace(path) == "" {
		raw, err = manifestFS.ReadFile(defaultManifest)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read blog manifest: %w", err)
	}
	return ParseBlog(raw)
}

// ParseBlog builds a Blog from YAML, filling defaults for missing fields.
func ParseBlog(raw []byte) (*Blog, error) {
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse blog manifest: %w", err)
	}

	posts := make([]Post, 0, len(m.Posts))
	seen := make(map[string]struct{}, len(m.Posts))
	for i, p := range m.Posts {
		p = withDefaults(p)
		if p.Slug == "" {
			return nil, fmt.Errorf("blog post %d has neither slug nor title", i)
		}
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate blog slug %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
		posts = append(posts, p)
	}

	// Newest first; undated posts sink to the end.
	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].Date).After(parseDate(posts[j].Date))
	})

	b := &Blog{posts: posts, bySlug: make(map[string]int, len(posts))}
	for i, p := range posts {
		b.bySlug[p.Slug] = i
	}
	return b, nil
}

func withDefaults(p Post) Post {
	p.Title = strings.TrimSpace(p.Title)
	if p.Slug = strings.TrimSpace(p.Slug); p.Slug == "" && p.Title != "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if strings.TrimSpace(p.Category) == "" {
		p.Category = DefaultCategory
	}
	if strings.TrimSpace(p.Author) == "" {
		p.Author = DefaultAuthor
	}
	if strings.TrimSpace(p.ReadTime) == "" {
		p.ReadTime = DefaultReadTime
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// Posts returns post summaries matching q, newest first.
func (b *Blog) Posts(q Query) []Post {
	matched := Filter(b.posts, q)
	for i := range matched {
		matched[i] = matched[i].Summary()
	}
	return matched
}

// Post returns the full post for slug.
func (b *Blog) Post(slug string) (Post, bool) {
	i, ok := b.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return b.posts[i], true
}

// Tags returns every tag used by a post, in first-seen order.
func (b *Blog) Tags() []string {
	return distinctTags(b.posts)
}

// Categories returns every category used by a post, in first-seen order.
func (b *Blog) Categories() []string {
	return distinct(b.posts, FacetCategory)
}
