package dto

import (
	"time"

	"instituteapi/model"
)

func parseDate(fe model.FieldErrors, field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := model.ParseDate(value)
	if err != nil {
		fe.Add(field, field+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return t
}

type JournalArticleInput struct {
	Title         string         `json:"title" binding:"required"`
	Abstract      string         `json:"abstract" binding:"required"`
	Category      string         `json:"category" binding:"required"`
	Authors       []model.Author `json:"authors" binding:"required,min=1,dive"`
	PublishedDate string         `json:"publishedDate" binding:"required"`
	Volume        int            `json:"volume" binding:"required,min=1"`
	Issue         int            `json:"issue" binding:"required,min=1"`
	Keywords      []string       `json:"keywords"`
	DocumentURL   string         `json:"documentUrl" binding:"omitempty,httpurl"`
	PeerReviewed  *bool          `json:"peerReviewed"`
}

// Model fails with field errors when publishedDate does not parse
func (in JournalArticleInput) Model() (*model.JournalArticle, error) {
	fe := model.FieldErrors{}
	published := parseDate(fe, "publishedDate", in.PublishedDate)
	if err := fe.Err(); err != nil {
		return nil, err
	}

	reviewed := true
	if in.PeerReviewed != nil {
		reviewed = *in.PeerReviewed
	}
	return &model.JournalArticle{
		Title:         in.Title,
		Abstract:      in.Abstract,
		Category:      in.Category,
		Authors:       in.Authors,
		PublishedDate: published,
		Volume:        in.Volume,
		Issue:         in.Issue,
		Keywords:      in.Keywords,
		DocumentURL:   in.DocumentURL,
		PeerReviewed:  reviewed,
	}, nil
}

type JournalArticlePatch struct {
	Title         *string         `json:"title" binding:"omitempty,min=1"`
	Abstract      *string         `json:"abstract" binding:"omitempty,min=1"`
	Category      *string         `json:"category" binding:"omitempty,min=1"`
	Authors       *[]model.Author `json:"authors" binding:"omitempty,min=1,dive"`
	PublishedDate *string         `json:"publishedDate" binding:"omitempty,min=1"`
	Volume        *int            `json:"volume" binding:"omitempty,min=1"`
	Issue         *int            `json:"issue" binding:"omitempty,min=1"`
	Keywords      *[]string       `json:"keywords"`
	DocumentURL   *string         `json:"documentUrl"`
	PeerReviewed  *bool           `json:"peerReviewed"`
}

// Check parses fields that need conversion before Apply
func (p JournalArticlePatch) Check() error {
	fe := model.FieldErrors{}
	if p.PublishedDate != nil {
		parseDate(fe, "publishedDate", *p.PublishedDate)
	}
	return fe.Err()
}

func (p JournalArticlePatch) Apply(a *model.JournalArticle) {
	set(&a.Title, p.Title)
	set(&a.Abstract, p.Abstract)
	set(&a.Category, p.Category)
	setSlice(&a.Authors, p.Authors)
	if p.PublishedDate != nil {
		if t, err := model.ParseDate(*p.PublishedDate); err == nil {
			a.PublishedDate = t
		}
	}
	set(&a.Volume, p.Volume)
	set(&a.Issue, p.Issue)
	setSlice(&a.Keywords, p.Keywords)
	set(&a.DocumentURL, p.DocumentURL)
	set(&a.PeerReviewed, p.PeerReviewed)
}

type JournalVolumeInput struct {
	Title         string `json:"title" binding:"required"`
	Volume        int    `json:"volume" binding:"omitempty,min=1"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail" binding:"omitempty,httpurl"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"publishedDate"`
	DocumentURL   string `json:"documentUrl" binding:"omitempty,httpurl"`
}

func (in JournalVolumeInput) Model() (*model.JournalVolume, error) {
	fe := model.FieldErrors{}
	published := parseDate(fe, "publishedDate", in.PublishedDate)
	if err := fe.Err(); err != nil {
		return nil, err
	}
	return &model.JournalVolume{
		Title:         in.Title,
		Volume:        in.Volume,
		Description:   in.Description,
		Thumbnail:     in.Thumbnail,
		Publisher:     in.Publisher,
		PublishedDate: published,
		DocumentURL:   in.DocumentURL,
	}, nil
}

type JournalVolumePatch struct {
	Title         *string `json:"title" binding:"omitempty,min=1"`
	Volume        *int    `json:"volume" binding:"omitempty,min=0"`
	Description   *string `json:"description"`
	Thumbnail     *string `json:"thumbnail"`
	Publisher     *string `json:"publisher"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,min=1"`
	DocumentURL   *string `json:"documentUrl"`
}

func (p JournalVolumePatch) Check() error {
	fe := model.FieldErrors{}
	if p.PublishedDate != nil {
		parseDate(fe, "publishedDate", *p.PublishedDate)
	}
	return fe.Err()
}

func (p JournalVolumePatch) Apply(v *model.JournalVolume) {
	set(&v.Title, p.Title)
	set(&v.Volume, p.Volume)
	set(&v.Description, p.Description)
	set(&v.Thumbnail, p.Thumbnail)
	set(&v.Publisher, p.Publisher)
	if p.PublishedDate != nil {
		if t, err := model.ParseDate(*p.PublishedDate); err == nil {
			v.PublishedDate = t
		}
	}
	set(&v.DocumentURL, p.DocumentURL)
}
