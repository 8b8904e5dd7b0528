package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `id, name, email, phone, picture, is_favourite, created_at, updated_at`

// Repository handles all contact database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new contact and returns the created record. The email
// unique constraint is the authoritative duplicate check; its violation is
// reported as ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, c Contact) (*Contact, error) {
	out := &Contact{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, picture, is_favourite)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.Picture, c.IsFavourite,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Picture, &out.IsFavourite, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return out, nil
}

// GetByID fetches a contact by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Contact, error) {
	out := &Contact{}
	err := r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`,
		id,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Picture, &out.IsFavourite, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact by id: %w", err)
	}
	return out, nil
}

// GetByEmail fetches a contact by exact email match.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Contact, error) {
	out := &Contact{}
	err := r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE email = $1`,
		email,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Picture, &out.IsFavourite, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact by email: %w", err)
	}
	return out, nil
}

// List returns all contacts ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []Contact{}
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Picture, &c.IsFavourite, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Update overwrites the mutable fields of an existing contact and returns
// the stored record with its refreshed updated_at.
func (r *Repository) Update(ctx context.Context, c Contact) (*Contact, error) {
	out := &Contact{}
	err := r.db.QueryRow(ctx,
		`UPDATE contacts
		 SET name = $2, email = $3, phone = $4, picture = $5, is_favourite = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+contactColumns,
		c.ID, c.Name, c.Email, c.Phone, c.Picture, c.IsFavourite,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Picture, &out.IsFavourite, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return out, nil
}

// Delete removes a contact row by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
