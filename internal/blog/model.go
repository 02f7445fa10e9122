package blog

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrSlugExists    = errors.New("blog with this title already exists")
	ErrMissingFields = errors.New("title and content are required")
	ErrInvalidTitle  = errors.New("title must contain letters or digits")
)

const (
	DefaultReadTime = "5 min read"
	dateLayout      = "2006-01-02"
)

// Blog is a stored post. Slug carries a unique index.
type Blog struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug      string        `bson:"slug" json:"slug"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Date      string        `bson:"date" json:"date"`
	ReadTime  string        `bson:"read_time" json:"readTime"`
	Tags      []string      `bson:"tags" json:"tags"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// CreateBlogRequest is the body of POST /blogs/create.
type CreateBlogRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Date     string   `json:"date,omitempty"`
	ReadTime string   `json:"readTime,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type CreateBlogResponse struct {
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

// BlogMeta is the front matter half of a BlogResponse.
type BlogMeta struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
}

// BlogResponse is the wire shape of a single post.
type BlogResponse struct {
	Data    BlogMeta `json:"data"`
	Content string   `json:"content"`
}

// Response converts a stored blog into its wire shape.
func (b *Blog) Response() *BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return &BlogResponse{
		Data: BlogMeta{
			Title:    b.Title,
			Date:     b.Date,
			ReadTime: b.ReadTime,
			Tags:     tags,
		},
		Content: b.Content,
	}
}
