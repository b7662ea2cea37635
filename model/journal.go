package model

import (
	"strings"
	"time"
)

type JournalArticle struct {
	Base          `bson:",inline"`
	Title         string    `bson:"title" json:"title"`
	Abstract      string    `bson:"abstract" json:"abstract"`
	Category      string    `bson:"category" json:"category"`
	Authors       []Author  `bson:"authors" json:"authors"`
	PublishedDate time.Time `bson:"publishedDate" json:"publishedDate"`
	Volume        int       `bson:"volume" json:"volume"`
	Issue         int       `bson:"issue" json:"issue"`
	Keywords      []string  `bson:"keywords" json:"keywords"`
	DocumentURL   string    `bson:"documentUrl,omitempty" json:"documentUrl,omitempty"`
	PeerReviewed  bool      `bson:"peerReviewed" json:"peerReviewed"`
}

func (a *JournalArticle) Prepare(time.Time) {
	a.Title = strings.TrimSpace(a.Title)
	a.Abstract = strings.TrimSpace(a.Abstract)
	a.Category = strings.TrimSpace(a.Category)
	a.DocumentURL = strings.TrimSpace(a.DocumentURL)
	a.Authors = normalizeAuthors(a.Authors)
	a.Keywords = trimAll(a.Keywords)
	a.PublishedDate = a.PublishedDate.UTC()
}

func (a *JournalArticle) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "title", a.Title)
	requireText(fe, "abstract", a.Abstract)
	requireText(fe, "category", a.Category)
	if a.PublishedDate.IsZero() {
		fe.Add("publishedDate", "publishedDate is required")
	}
	if a.Volume < 1 {
		fe.Add("volume", "volume must be at least 1")
	}
	if a.Issue < 1 {
		fe.Add("issue", "issue must be at least 1")
	}
	optionalURL(fe, "documentUrl", a.DocumentURL)
	validateAuthors(fe, a.Authors, true)
	return fe.Err()
}

type JournalVolume struct {
	Base          `bson:",inline"`
	Title         string    `bson:"title" json:"title"`
	Volume        int       `bson:"volume,omitempty" json:"volume,omitempty"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Thumbnail     string    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Publisher     string    `bson:"publisher,omitempty" json:"publisher,omitempty"`
	PublishedDate time.Time `bson:"publishedDate" json:"publishedDate"`
	DocumentURL   string    `bson:"documentUrl,omitempty" json:"documentUrl,omitempty"`
}

func (v *JournalVolume) Prepare(now time.Time) {
	v.Title = strings.TrimSpace(v.Title)
	v.Description = strings.TrimSpace(v.Description)
	v.Thumbnail = strings.TrimSpace(v.Thumbnail)
	v.Publisher = strings.TrimSpace(v.Publisher)
	v.DocumentURL = strings.TrimSpace(v.DocumentURL)
	if v.PublishedDate.IsZero() {
		v.PublishedDate = now
	}
	v.PublishedDate = v.PublishedDate.UTC()
}

func (v *JournalVolume) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "title", v.Title)
	if v.Volume < 0 {
		fe.Add("volume", "volume must not be negative")
	}
	optionalURL(fe, "thumbnail", v.Thumbnail)
	optionalURL(fe, "documentUrl", v.DocumentURL)
	return fe.Err()
}

// JournalContent is the singleton holding the journal landing page text
type JournalContent struct {
	Base                 `bson:",inline"`
	Key                  string   `bson:"key" json:"-"`
	Title                string   `bson:"title" json:"title"`
	Description          string   `bson:"description" json:"description"`
	AimsAndScope         string   `bson:"aimsAndScope" json:"aimsAndScope"`
	SubmissionGuidelines string   `bson:"submissionGuidelines" json:"submissionGuidelines"`
	ISSN                 string   `bson:"issn,omitempty" json:"issn,omitempty"`
	ContactEmail         string   `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	EditorialBoard       []Author `bson:"editorialBoard" json:"editorialBoard"`
	CoverImage           string   `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
}

func (j *JournalContent) Prepare(time.Time) {
	j.Title = strings.TrimSpace(j.Title)
	j.ISSN = strings.TrimSpace(j.ISSN)
	j.ContactEmail = strings.TrimSpace(j.ContactEmail)
	j.CoverImage = strings.TrimSpace(j.CoverImage)
	j.EditorialBoard = normalizeAuthors(j.EditorialBoard)
}

func (j *JournalContent) Validate() error {
	fe := FieldErrors{}
	optionalURL(fe, "coverImage", j.CoverImage)
	validateAuthors(fe, j.EditorialBoard, false)
	return fe.Err()
}

func (j *JournalContent) SetKey(key string) { j.Key = key }
