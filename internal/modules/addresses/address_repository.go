package addresses

import (
	"context"
	"errors"
	"fmt"

	"contact-management/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for address storage. Every lookup
// is scoped to the owning contact id.
type RepositoryInterface interface {
	Create(ctx context.Context, contactID int, req models.CreateAddressRequest) (*models.Address, error)
	FindByID(ctx context.Context, contactID, addressID int) (*models.Address, error)
	CountByID(ctx context.Context, contactID, addressID int) (int, error)
	Update(ctx context.Context, addressID int, req models.UpdateAddressRequest) (*models.Address, error)
	Delete(ctx context.Context, addressID int) error
	ListByContactID(ctx context.Context, contactID int) ([]models.Address, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func scanAddress(row pgx.Row) (*models.Address, error) {
	var address models.Address
	err := row.Scan(&address.ID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to scan address: %w", err)
	}
	return &address, nil
}

func (r *Repository) Create(ctx context.Context, contactID int, req models.CreateAddressRequest) (*models.Address, error) {
	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, street, city, province, country, postal_code`

	row := r.db.QueryRow(ctx, query, contactID, req.Street, req.City, req.Province, req.Country, req.PostalCode)
	address, err := scanAddress(row)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateAddress: %w", err)
	}
	return address, nil
}

func (r *Repository) FindByID(ctx context.Context, contactID, addressID int) (*models.Address, error) {
	query := `
		SELECT id, street, city, province, country, postal_code
		FROM addresses
		WHERE contact_id = $1 AND id = $2`

	address, err := scanAddress(r.db.QueryRow(ctx, query, contactID, addressID))
	if err != nil {
		if errors.Is(err, models.ErrAddressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindAddressByID: %w", err)
	}
	return address, nil
}

func (r *Repository) CountByID(ctx context.Context, contactID, addressID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM addresses WHERE contact_id = $1 AND id = $2`
	if err := r.db.QueryRow(ctx, query, contactID, addressID).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.CountAddressByID: %w", err)
	}
	return count, nil
}

func (r *Repository) Update(ctx context.Context, addressID int, req models.UpdateAddressRequest) (*models.Address, error) {
	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6
		RETURNING id, street, city, province, country, postal_code`

	row := r.db.QueryRow(ctx, query, req.Street, req.City, req.Province, req.Country, req.PostalCode, addressID)
	address, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, models.ErrAddressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.UpdateAddress: %w", err)
	}
	return address, nil
}

func (r *Repository) Delete(ctx context.Context, addressID int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, addressID)
	if err != nil {
		return fmt.Errorf("repository.DeleteAddress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrAddressNotFound
	}
	return nil
}

func (r *Repository) ListByContactID(ctx context.Context, contactID int) ([]models.Address, error) {
	query := `
		SELECT id, street, city, province, country, postal_code
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAddresses.Query: %w", err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListAddresses.Scan: %w", err)
		}
		addresses = append(addresses, *address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListAddresses.Rows: %w", err)
	}
	return addresses, nil
}
