package usecase

import (
	"instituteapi/model"
	"instituteapi/repository"
)

type PublicationService struct {
	*ContentService[model.Publication, *model.Publication]
}

func NewPublicationService(store repository.Store[model.Publication]) *PublicationService {
	return &PublicationService{
		ContentService: NewContentService[model.Publication, *model.Publication](store, "publications",
			repository.Sort{Field: "createdAt", Desc: true},
		),
	}
}
