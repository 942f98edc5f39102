package addresses

import (
	"context"
	"errors"
	"fmt"

	"contact-management/internal/models"
)

// ContactGuard confirms that a contact exists and belongs to the given user.
// The contacts service satisfies this; every address operation runs it first,
// so an address is never reachable outside its owning contact's owner.
type ContactGuard interface {
	MustExist(ctx context.Context, username string, contactID int) error
}

// ServiceInterface defines the contract for address business logic.
type ServiceInterface interface {
	Create(ctx context.Context, username string, contactID int, req models.CreateAddressRequest) (*models.Address, error)
	Get(ctx context.Context, username string, contactID, addressID int) (*models.Address, error)
	Update(ctx context.Context, username string, contactID, addressID int, req models.UpdateAddressRequest) (*models.Address, error)
	Delete(ctx context.Context, username string, contactID, addressID int) error
	List(ctx context.Context, username string, contactID int) ([]models.Address, error)
}

type Service struct {
	repo     RepositoryInterface
	contacts ContactGuard
}

func NewService(repo RepositoryInterface, contacts ContactGuard) ServiceInterface {
	return &Service{repo: repo, contacts: contacts}
}

// mustExist confirms exactly one address matches the (contact, address) pair.
// An address id that exists under a different contact is not found.
func (s *Service) mustExist(ctx context.Context, contactID, addressID int) error {
	count, err := s.repo.CountByID(ctx, contactID, addressID)
	if err != nil {
		return fmt.Errorf("service.AddressMustExist: %w", err)
	}
	if count != 1 {
		return models.ErrAddressNotFound
	}
	return nil
}

func (s *Service) Create(ctx context.Context, username string, contactID int, req models.CreateAddressRequest) (*models.Address, error) {
	if err := s.contacts.MustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address, err := s.repo.Create(ctx, contactID, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateAddress: %w", err)
	}
	return address, nil
}

func (s *Service) Get(ctx context.Context, username string, contactID, addressID int) (*models.Address, error) {
	if err := s.contacts.MustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address, err := s.repo.FindByID(ctx, contactID, addressID)
	if err != nil {
		if errors.Is(err, models.ErrAddressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.GetAddress: %w", err)
	}
	return address, nil
}

func (s *Service) Update(ctx context.Context, username string, contactID, addressID int, req models.UpdateAddressRequest) (*models.Address, error) {
	if err := s.contacts.MustExist(ctx, username, contactID); err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, contactID, addressID); err != nil {
		return nil, err
	}

	address, err := s.repo.Update(ctx, addressID, req)
	if err != nil {
		if errors.Is(err, models.ErrAddressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.UpdateAddress: %w", err)
	}
	return address, nil
}

func (s *Service) Delete(ctx context.Context, username string, contactID, addressID int) error {
	if err := s.contacts.MustExist(ctx, username, contactID); err != nil {
		return err
	}
	if err := s.mustExist(ctx, contactID, addressID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, addressID); err != nil {
		if errors.Is(err, models.ErrAddressNotFound) {
			return err
		}
		return fmt.Errorf("service.DeleteAddress: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, username string, contactID int) ([]models.Address, error) {
	if err := s.contacts.MustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.repo.ListByContactID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("service.ListAddresses: %w", err)
	}
	return addresses, nil
}
