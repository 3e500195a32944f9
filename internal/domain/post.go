package domain

import (
	"encoding/json"
	"io"
	"strconv"
)

// PostTimeLayout is the created_at format: YYYY-MM-DD HH:MM:SS.
const PostTimeLayout = "2006-01-02 15:04:05"

// DefaultPostDate is shown for legacy posts that carry neither created_at nor date.
const DefaultPostDate = "2026-01-22"

// Post represents a blog post record in posts.json.
type Post struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at,omitempty"`

	// Date is the legacy timestamp field used by older records.
	Date string `json:"date,omitempty"`

	// Published is nil when the record has no published field, which means published.
	Published *bool `json:"published,omitempty"`

	// Extra holds fields this version does not know about.
	Extra map[string]any `json:"-"`

	// stored lists the known keys the record was loaded with; nil for posts
	// built in code.
	stored keySet
}

type postAlias Post

var postFields = []string{"id", "title", "content", "category", "created_at", "date", "published"}

// newPostKeys are always written for posts created by the workflow.
var newPostKeys = keySet{"id": true, "title": true, "content": true, "category": true}

// UnmarshalJSON keeps unknown fields in Extra.
func (p *Post) UnmarshalJSON(data []byte) error {
	var a postAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*p = Post(a)
	p.Extra, p.stored = splitExtra(obj, postFields...)
	return nil
}

// MarshalJSON writes the known keys the record was loaded with, any key
// that has a value, and Extra.
func (p Post) MarshalJSON() ([]byte, error) {
	o := newObject(p.Extra, p.stored, newPostKeys)
	o.put("id", p.ID, p.ID == 0)
	o.put("title", p.Title, p.Title == "")
	o.put("content", p.Content, p.Content == "")
	o.put("category", p.Category, p.Category == "")
	o.put("created_at", p.CreatedAt, p.CreatedAt == "")
	o.put("date", p.Date, p.Date == "")
	o.put("published", p.Published, p.Published == nil)
	return o.encode()
}

// IsPublished reports whether the post shows up in public listings.
func (p Post) IsPublished() bool {
	return p.Published == nil || *p.Published
}

// IDString returns the id in the form used by URLs.
func (p Post) IDString() string {
	return strconv.Itoa(p.ID)
}

// DisplayDate returns created_at, falling back to the legacy date field.
func (p Post) DisplayDate() string {
	switch {
	case p.CreatedAt != "":
		return p.CreatedAt
	case p.Date != "":
		return p.Date
	default:
		return DefaultPostDate
	}
}

// NextPostID returns max(existing ids)+1, or 1 for an empty collection.
// A deleted highest id is handed out again.
func NextPostID(posts []Post) int {
	maxID := 0
	for _, p := range posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// FindPost returns the index of the post whose id matches id as a string, or -1.
func FindPost(posts []Post, id string) int {
	for i := range posts {
		if posts[i].IDString() == id {
			return i
		}
	}
	return -1
}

// ImageFile is an uploaded file attached to a post form.
type ImageFile struct {
	Filename string
	Body     io.Reader
}

// PostInput carries the editable fields of a post form.
type PostInput struct {
	Title    string
	Content  string
	Category string
	Image    *ImageFile
}
