package model

import "time"

type Content struct {
	DTO
	Type        string     `gorm:"not null" json:"type"` // PAGE, BLOG_POST, GUIDE, BANNER
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"unique;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     string     `json:"excerpt"`
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Language    string     `gorm:"size:2;default:'en'" json:"language"`
}
type Contents []Content

type CreateContentInput struct {
	Type        string `json:"type" validate:"required,oneof=PAGE BLOG_POST GUIDE BANNER"`
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required,min=10"`
	Excerpt     string `json:"excerpt" validate:"omitempty"`
	IsPublished *bool  `json:"isPublished" validate:"omitempty"`
	Language    string `json:"language" validate:"omitempty,len=2"`
}

type UpdateContentInput struct {
	Title       *string `json:"title" validate:"omitempty"`
	Content     *string `json:"content" validate:"omitempty,min=10"`
	Excerpt     *string `json:"excerpt" validate:"omitempty"`
	IsPublished *bool   `json:"isPublished" validate:"omitempty"`
	Language    *string `json:"language" validate:"omitempty,len=2"`
}
