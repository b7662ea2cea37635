package dto

import "instituteapi/model"

// HomeContentPatch serves both PUT and PATCH; absent fields keep their stored value
type HomeContentPatch struct {
	HeroTitle    *string   `json:"heroTitle"`
	HeroSubtitle *string   `json:"heroSubtitle"`
	HeroImage    *string   `json:"heroImage"`
	About        *string   `json:"about"`
	Mission      *string   `json:"mission"`
	Vision       *string   `json:"vision"`
	Highlights   *[]string `json:"highlights"`
}

func (p HomeContentPatch) Apply(h *model.HomeContent) {
	set(&h.HeroTitle, p.HeroTitle)
	set(&h.HeroSubtitle, p.HeroSubtitle)
	set(&h.HeroImage, p.HeroImage)
	set(&h.About, p.About)
	set(&h.Mission, p.Mission)
	set(&h.Vision, p.Vision)
	setSlice(&h.Highlights, p.Highlights)
}

type JournalContentPatch struct {
	Title                *string         `json:"title"`
	Description          *string         `json:"description"`
	AimsAndScope         *string         `json:"aimsAndScope"`
	SubmissionGuidelines *string         `json:"submissionGuidelines"`
	ISSN                 *string         `json:"issn"`
	ContactEmail         *string         `json:"contactEmail" binding:"omitempty,email"`
	EditorialBoard       *[]model.Author `json:"editorialBoard" binding:"omitempty,dive"`
	CoverImage           *string         `json:"coverImage"`
}

func (p JournalContentPatch) Apply(j *model.JournalContent) {
	set(&j.Title, p.Title)
	set(&j.Description, p.Description)
	set(&j.AimsAndScope, p.AimsAndScope)
	set(&j.SubmissionGuidelines, p.SubmissionGuidelines)
	set(&j.ISSN, p.ISSN)
	set(&j.ContactEmail, p.ContactEmail)
	setSlice(&j.EditorialBoard, p.EditorialBoard)
	set(&j.CoverImage, p.CoverImage)
}
