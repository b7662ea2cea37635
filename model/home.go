package model

import (
	"strings"
	"time"
)

// HomeContent is the singleton holding the editable home page text
type HomeContent struct {
	Base         `bson:",inline"`
	Key          string   `bson:"key" json:"-"`
	HeroTitle    string   `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle string   `bson:"heroSubtitle" json:"heroSubtitle"`
	HeroImage    string   `bson:"heroImage,omitempty" json:"heroImage,omitempty"`
	About        string   `bson:"about" json:"about"`
	Mission      string   `bson:"mission" json:"mission"`
	Vision       string   `bson:"vision" json:"vision"`
	Highlights   []string `bson:"highlights" json:"highlights"`
}

func (h *HomeContent) Prepare(time.Time) {
	h.HeroTitle = strings.TrimSpace(h.HeroTitle)
	h.HeroSubtitle = strings.TrimSpace(h.HeroSubtitle)
	h.HeroImage = strings.TrimSpace(h.HeroImage)
	h.Highlights = trimAll(h.Highlights)
}

func (h *HomeContent) Validate() error {
	fe := FieldErrors{}
	optionalURL(fe, "heroImage", h.HeroImage)
	return fe.Err()
}

func (h *HomeContent) SetKey(key string) { h.Key = key }
