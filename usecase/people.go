package usecase

import (
	"instituteapi/model"
	"instituteapi/repository"
)

type StaffService struct {
	*ContentService[model.Staff, *model.Staff]
}

func NewStaffService(store repository.Store[model.Staff]) *StaffService {
	return &StaffService{
		ContentService: NewContentService[model.Staff, *model.Staff](store, "staff",
			repository.Sort{Field: "order"},
			repository.Sort{Field: "name"},
		),
	}
}

type ResourcePersonService struct {
	*ContentService[model.ResourcePerson, *model.ResourcePerson]
}

func NewResourcePersonService(store repository.Store[model.ResourcePerson]) *ResourcePersonService {
	return &ResourcePersonService{
		ContentService: NewContentService[model.ResourcePerson, *model.ResourcePerson](store, "resourcepersons",
			repository.Sort{Field: "name"},
		),
	}
}
