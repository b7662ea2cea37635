package dto

import "instituteapi/model"

type EventInput struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description" binding:"required"`
	Location         string            `json:"location"`
	Medium           string            `json:"medium" binding:"omitempty,oneof=online offline hybrid"`
	Status           model.EventStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	Date             string            `json:"date" binding:"required,datetime=2006-01-02"`
	Time             string            `json:"time" binding:"omitempty,datetime=15:04"`
	Authors          []model.Author    `json:"authors" binding:"omitempty,dive"`
	Thumbnail        string            `json:"thumbnail" binding:"omitempty,httpurl"`
	RegistrationLink string            `json:"registrationLink" binding:"omitempty,httpurl"`
}

func (in EventInput) Model() *model.Event {
	return &model.Event{
		Title:            in.Title,
		Description:      in.Description,
		Location:         in.Location,
		Medium:           in.Medium,
		Status:           in.Status,
		Date:             in.Date,
		Time:             in.Time,
		Authors:          in.Authors,
		Thumbnail:        in.Thumbnail,
		RegistrationLink: in.RegistrationLink,
	}
}

type EventPatch struct {
	Title            *string            `json:"title" binding:"omitempty,min=1"`
	Description      *string            `json:"description" binding:"omitempty,min=1"`
	Location         *string            `json:"location"`
	Medium           *string            `json:"medium" binding:"omitempty,oneof=online offline hybrid"`
	Status           *model.EventStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	Date             *string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time             *string            `json:"time"`
	Authors          *[]model.Author    `json:"authors" binding:"omitempty,dive"`
	Thumbnail        *string            `json:"thumbnail"`
	RegistrationLink *string            `json:"registrationLink"`
}

func (p EventPatch) Apply(e *model.Event) {
	set(&e.Title, p.Title)
	set(&e.Description, p.Description)
	set(&e.Location, p.Location)
	set(&e.Medium, p.Medium)
	set(&e.Status, p.Status)
	set(&e.Date, p.Date)
	set(&e.Time, p.Time)
	setSlice(&e.Authors, p.Authors)
	set(&e.Thumbnail, p.Thumbnail)
	set(&e.RegistrationLink, p.RegistrationLink)
}

type EventStatusInput struct {
	Status model.EventStatus `json:"status" binding:"required,oneof=active inactive deleted"`
}

type NewsInput struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Status      model.NewsStatus `json:"status" binding:"omitempty,oneof=Published Draft"`
	Date        string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        string           `json:"time" binding:"omitempty,datetime=15:04"`
	Authors     []model.Author   `json:"authors" binding:"required,min=1,dive"`
	Images      []string         `json:"images" binding:"omitempty,dive,httpurl"`
}

func (in NewsInput) Model() *model.NewsBlog {
	return &model.NewsBlog{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Date:        in.Date,
		Time:        in.Time,
		Authors:     in.Authors,
		Images:      in.Images,
	}
}

type NewsPatch struct {
	Title       *string           `json:"title" binding:"omitempty,min=1"`
	Description *string           `json:"description" binding:"omitempty,min=1"`
	Category    *string           `json:"category" binding:"omitempty,min=1"`
	Status      *model.NewsStatus `json:"status" binding:"omitempty,oneof=Published Draft"`
	Date        *string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string           `json:"time"`
	Authors     *[]model.Author   `json:"authors" binding:"omitempty,min=1,dive"`
	Images      *[]string         `json:"images" binding:"omitempty,dive,httpurl"`
}

func (p NewsPatch) Apply(n *model.NewsBlog) {
	set(&n.Title, p.Title)
	set(&n.Description, p.Description)
	set(&n.Category, p.Category)
	set(&n.Status, p.Status)
	set(&n.Date, p.Date)
	set(&n.Time, p.Time)
	setSlice(&n.Authors, p.Authors)
	setSlice(&n.Images, p.Images)
}

type PublicationInput struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	DocumentURL string         `json:"documentUrl" binding:"required,httpurl"`
	Category    string         `json:"category" binding:"required"`
	Authors     []model.Author `json:"authors" binding:"required,min=1,dive"`
	Thumbnail   string         `json:"thumbnail" binding:"omitempty,httpurl"`
	AuthorImage string         `json:"authorImage" binding:"omitempty,httpurl"`
}

func (in PublicationInput) Model() *model.Publication {
	return &model.Publication{
		Title:       in.Title,
		Description: in.Description,
		DocumentURL: in.DocumentURL,
		Category:    in.Category,
		Authors:     in.Authors,
		Thumbnail:   in.Thumbnail,
		AuthorImage: in.AuthorImage,
	}
}

type PublicationPatch struct {
	Title       *string         `json:"title" binding:"omitempty,min=1"`
	Description *string         `json:"description"`
	DocumentURL *string         `json:"documentUrl"`
	Category    *string         `json:"category" binding:"omitempty,min=1"`
	Authors     *[]model.Author `json:"authors" binding:"omitempty,min=1,dive"`
	Thumbnail   *string         `json:"thumbnail"`
	AuthorImage *string         `json:"authorImage"`
}

func (p PublicationPatch) Apply(pub *model.Publication) {
	set(&pub.Title, p.Title)
	set(&pub.Description, p.Description)
	set(&pub.DocumentURL, p.DocumentURL)
	set(&pub.Category, p.Category)
	setSlice(&pub.Authors, p.Authors)
	set(&pub.Thumbnail, p.Thumbnail)
	set(&pub.AuthorImage, p.AuthorImage)
}
