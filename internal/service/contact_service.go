package service

import (
	"context"
	"fmt"

	"community_survey/internal/models"
	"community_survey/internal/repository"
)

type ContactService struct {
	contactRepo repository.ContactRepo
}

func NewContactService(contactRepo repository.ContactRepo) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.List(ctx)
}

func (s *ContactService) CreateContact(ctx context.Context, name, phone string) (models.Contact, error) {
	if name == "" || phone == "" {
		return models.Contact{}, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}
	id, err := s.contactRepo.Create(ctx, name, phone)
	if err != nil {
		return models.Contact{}, err
	}
	return models.Contact{ID: id, Name: name, Phone: phone}, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	found, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: contact %d", ErrNotFound, id)
	}
	return nil
}
