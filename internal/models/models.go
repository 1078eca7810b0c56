package models

import (
	"time"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

func (u *User) Identity() Identity {
	return Identity{UserID: u.UserID, Name: u.Name, Email: u.Email}
}

type Category struct {
	CategoryID string    `json:"id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	PostCount  int64     `json:"postCount" db:"post_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Tag struct {
	TagID     string    `json:"id" db:"tag_id"`
	Name      string    `json:"name" db:"name"`
	PostCount int64     `json:"postCount" db:"post_count"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PostTag is a post_tags row joined with the tag name.
type PostTag struct {
	PostID string `db:"post_id"`
	TagID  string `db:"tag_id"`
	Name   string `db:"name"`
}

type Post struct {
	PostID       string     `json:"id" db:"post_id"`
	Title        string     `json:"title" db:"title"`
	Content      string     `json:"content" db:"content"`
	Status       PostStatus `json:"status" db:"status"`
	ReadingTime  int        `json:"readingTime" db:"reading_time"`
	Photo        *string    `json:"photo" db:"photo"`
	AuthorID     string     `json:"authorId" db:"author_id"`
	AuthorName   string     `json:"authorName" db:"author_name"`
	CategoryID   string     `json:"categoryId" db:"category_id"`
	CategoryName string     `json:"categoryName" db:"category_name"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	Tags         []Tag      `json:"tags" db:"-"`
}

func (p *Post) OwnerID() string {
	return p.AuthorID
}

// TagIDs returns the ids of the post's current tag set.
func (p *Post) TagIDs() []string {
	ids := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		ids = append(ids, tag.TagID)
	}
	return ids
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	Content   string    `json:"content" db:"content"`
	Likes     int       `json:"likes" db:"likes"`
	UserID    string    `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (c *Comment) OwnerID() string {
	return c.UserID
}
