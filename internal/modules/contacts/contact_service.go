package contacts

import (
	"context"
	"errors"
	"fmt"

	"contact-management/internal/models"
)

// ServiceInterface defines the contract for contact business logic. MustExist
// is consumed by the addresses module as its ownership gate.
type ServiceInterface interface {
	Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.Contact, error)
	Get(ctx context.Context, username string, contactID int) (*models.Contact, error)
	Update(ctx context.Context, username string, contactID int, req models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, username string, contactID int) error
	Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error)
	MustExist(ctx context.Context, username string, contactID int) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.Contact, error) {
	contact, err := s.repo.Create(ctx, username, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateContact: %w", err)
	}
	return contact, nil
}

func (s *Service) Get(ctx context.Context, username string, contactID int) (*models.Contact, error) {
	contact, err := s.repo.FindByID(ctx, username, contactID)
	if err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.GetContact: %w", err)
	}
	return contact, nil
}

func (s *Service) Update(ctx context.Context, username string, contactID int, req models.UpdateContactRequest) (*models.Contact, error) {
	if err := s.MustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	contact, err := s.repo.Update(ctx, contactID, req)
	if err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.UpdateContact: %w", err)
	}
	return contact, nil
}

func (s *Service) Delete(ctx context.Context, username string, contactID int) error {
	if err := s.MustExist(ctx, username, contactID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, contactID); err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			return err
		}
		return fmt.Errorf("service.DeleteContact: %w", err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error) {
	contacts, total, err := s.repo.Search(ctx, username, req)
	if err != nil {
		return nil, 0, fmt.Errorf("service.SearchContacts: %w", err)
	}
	return contacts, total, nil
}

// MustExist confirms that exactly one contact matches (owner, id) and fails
// with ErrContactNotFound otherwise. It is the authorization gate run before
// every mutation or address operation targeting an existing contact.
func (s *Service) MustExist(ctx context.Context, username string, contactID int) error {
	count, err := s.repo.CountByID(ctx, username, contactID)
	if err != nil {
		return fmt.Errorf("service.ContactMustExist: %w", err)
	}
	if count != 1 {
		return models.ErrContactNotFound
	}
	return nil
}
