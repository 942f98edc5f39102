package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact-management/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for contact storage.
type RepositoryInterface interface {
	Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.Contact, error)
	FindByID(ctx context.Context, username string, contactID int) (*models.Contact, error)
	CountByID(ctx context.Context, username string, contactID int) (int, error)
	Update(ctx context.Context, contactID int, req models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, contactID int) error
	Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return &contact, nil
}

func (r *Repository) Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, phone`

	row := r.db.QueryRow(ctx, query, username, req.FirstName, req.LastName, req.Email, req.Phone)
	contact, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateContact: %w", err)
	}
	return contact, nil
}

// FindByID resolves a contact scoped to its owner; another user's contact id
// behaves exactly like a nonexistent one.
func (r *Repository) FindByID(ctx context.Context, username string, contactID int) (*models.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone
		FROM contacts
		WHERE username = $1 AND id = $2`

	contact, err := scanContact(r.db.QueryRow(ctx, query, username, contactID))
	if err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindContactByID: %w", err)
	}
	return contact, nil
}

func (r *Repository) CountByID(ctx context.Context, username string, contactID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM contacts WHERE username = $1 AND id = $2`
	if err := r.db.QueryRow(ctx, query, username, contactID).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.CountContactByID: %w", err)
	}
	return count, nil
}

// Update replaces all editable fields; ownership must be checked by the caller
// before this runs.
func (r *Repository) Update(ctx context.Context, contactID int, req models.UpdateContactRequest) (*models.Contact, error) {
	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5
		RETURNING id, first_name, last_name, email, phone`

	row := r.db.QueryRow(ctx, query, req.FirstName, req.LastName, req.Email, req.Phone, contactID)
	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.UpdateContact: %w", err)
	}
	return contact, nil
}

func (r *Repository) Delete(ctx context.Context, contactID int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, contactID)
	if err != nil {
		return fmt.Errorf("repository.DeleteContact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrContactNotFound
	}
	return nil
}

// Search applies the conjunctive filter set and returns one page of matches
// plus the total match count from a separate query over the same filters.
func (r *Repository) Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.Contact, int, error) {
	whereClauses := []string{"username = $1"}
	args := []interface{}{username}
	argIdx := 2

	if req.Name != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+req.Name+"%")
		argIdx++
	}
	if req.Email != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("email ILIKE $%d", argIdx))
		args = append(args, "%"+req.Email+"%")
		argIdx++
	}
	if req.Phone != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("phone ILIKE $%d", argIdx))
		args = append(args, "%"+req.Phone+"%")
		argIdx++
	}

	where := strings.Join(whereClauses, " AND ")
	offset := (req.Page - 1) * req.Size

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, phone
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)

	rows, err := r.db.Query(ctx, query, append(args, req.Size, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts.Query: %w", err)
	}
	defer rows.Close()

	// Empty slice, not nil, so an empty page serializes as [].
	contacts := make([]models.Contact, 0, req.Size)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.SearchContacts.Scan: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts.Rows: %w", err)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts.Count: %w", err)
	}

	return contacts, total, nil
}
