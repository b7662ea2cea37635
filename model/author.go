package model

import (
	"fmt"
	"strings"
)

// Author is embedded inside events, news, publications and articles.
type Author struct {
	Name        string `bson:"name" json:"name" binding:"required"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty" binding:"omitempty,httpurl"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// NewAuthor builds a validated author
func NewAuthor(name, designation, image, description string) (Author, error) {
	a := Author{
		Name:        strings.TrimSpace(name),
		Designation: strings.TrimSpace(designation),
		Image:       strings.TrimSpace(image),
		Description: strings.TrimSpace(description),
	}
	if err := a.Validate(); err != nil {
		return Author{}, err
	}
	return a, nil
}

func (a *Author) normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Designation = strings.TrimSpace(a.Designation)
	a.Image = strings.TrimSpace(a.Image)
	a.Description = strings.TrimSpace(a.Description)
}

func (a Author) Validate() error {
	fe := FieldErrors{}
	a.collect(fe, "")
	return fe.Err()
}

func (a Author) collect(fe FieldErrors, prefix string) {
	requireText(fe, prefix+"name", a.Name)
	optionalURL(fe, prefix+"image", a.Image)
}

func normalizeAuthors(authors []Author) []Author {
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		a.normalize()
		out = append(out, a)
	}
	return out
}

func validateAuthors(fe FieldErrors, authors []Author, required bool) {
	if required && len(authors) == 0 {
		fe.Add("authors", "at least one author is required")
		return
	}
	for i, a := range authors {
		a.collect(fe, fmt.Sprintf("authors[%d].", i))
	}
}
