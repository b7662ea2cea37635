package model

import (
	"strings"
	"time"
)

type Staff struct {
	Base        `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Photo       string `bson:"photo,omitempty" json:"photo,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

func (s *Staff) Prepare(time.Time) {
	s.Name = strings.TrimSpace(s.Name)
	s.Photo = strings.TrimSpace(s.Photo)
	s.Designation = strings.TrimSpace(s.Designation)
	s.Description = strings.TrimSpace(s.Description)
}

func (s *Staff) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "name", s.Name)
	optionalURL(fe, "photo", s.Photo)
	return fe.Err()
}

// ResourcePerson is stored in the "authors" collection
type ResourcePerson struct {
	Base        `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Photo       string `bson:"photo,omitempty" json:"photo,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
	Affiliation string `bson:"affiliation,omitempty" json:"affiliation,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

func (r *ResourcePerson) Prepare(time.Time) {
	r.Name = strings.TrimSpace(r.Name)
	r.Photo = strings.TrimSpace(r.Photo)
	r.Designation = strings.TrimSpace(r.Designation)
	r.Affiliation = strings.TrimSpace(r.Affiliation)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *ResourcePerson) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "name", r.Name)
	optionalURL(fe, "photo", r.Photo)
	return fe.Err()
}
