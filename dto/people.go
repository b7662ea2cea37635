package dto

import "instituteapi/model"

type StaffInput struct {
	Name        string `json:"name" binding:"required"`
	Photo       string `json:"photo" binding:"omitempty,httpurl"`
	Designation string `json:"designation"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (in StaffInput) Model() *model.Staff {
	return &model.Staff{
		Name:        in.Name,
		Photo:       in.Photo,
		Designation: in.Designation,
		Description: in.Description,
		Order:       in.Order,
	}
}

type StaffPatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Photo       *string `json:"photo"`
	Designation *string `json:"designation"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (p StaffPatch) Apply(s *model.Staff) {
	set(&s.Name, p.Name)
	set(&s.Photo, p.Photo)
	set(&s.Designation, p.Designation)
	set(&s.Description, p.Description)
	set(&s.Order, p.Order)
}

type ResourcePersonInput struct {
	Name        string `json:"name" binding:"required"`
	Photo       string `json:"photo" binding:"omitempty,httpurl"`
	Designation string `json:"designation"`
	Affiliation string `json:"affiliation"`
	Description string `json:"description"`
}

func (in ResourcePersonInput) Model() *model.ResourcePerson {
	return &model.ResourcePerson{
		Name:        in.Name,
		Photo:       in.Photo,
		Designation: in.Designation,
		Affiliation: in.Affiliation,
		Description: in.Description,
	}
}

type ResourcePersonPatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Photo       *string `json:"photo"`
	Designation *string `json:"designation"`
	Affiliation *string `json:"affiliation"`
	Description *string `json:"description"`
}

func (p ResourcePersonPatch) Apply(r *model.ResourcePerson) {
	set(&r.Name, p.Name)
	set(&r.Photo, p.Photo)
	set(&r.Designation, p.Designation)
	set(&r.Affiliation, p.Affiliation)
	set(&r.Description, p.Description)
}
