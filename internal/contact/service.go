package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uxstudio/contacts/internal/storage"
)

// pictureKeyPrefix namespaces all uploaded pictures inside the bucket.
const pictureKeyPrefix = "contacts/"

// defaultPictureExt is used when the uploaded filename has no extension.
const defaultPictureExt = ".jpg"

// Repo is the persistence surface the service depends on, implemented by
// Repository.
type Repo interface {
	Create(ctx context.Context, c Contact) (*Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, c Contact) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

// PictureUpload is an incoming picture payload, typically one part of a
// multipart form.
type PictureUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Service contains business logic for contact management: uniqueness
// enforcement, the picture lifecycle against the object store, and key/URL
// normalization on read and write boundaries.
type Service struct {
	repo   Repo
	store  storage.Storage
	logger *zap.Logger
}

// NewService creates a new contact Service.
func NewService(repo Repo, store storage.Storage, logger *zap.Logger) *Service {
	return &Service{repo: repo, store: store, logger: logger}
}

// Create validates the input, rejects duplicate emails, uploads the picture
// when one is supplied, and persists the new contact. An upload failure
// aborts the create; an insert failure after a successful upload removes the
// freshly written blob so no orphan survives.
func (s *Service) Create(ctx context.Context, in Input, pic *PictureUpload) (*Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	c := Contact{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		IsFavourite: in.IsFavourite,
	}
	if pic != nil {
		key, err := s.uploadPicture(ctx, pic)
		if err != nil {
			return nil, err
		}
		c.Picture = &key
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if c.Picture != nil {
			s.cleanupBlob(ctx, *c.Picture)
		}
		return nil, err
	}
	s.presentPicture(created)
	return created, nil
}

// List returns all contacts with their picture fields in public-URL form.
func (s *Service) List(ctx context.Context) ([]Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		s.presentPicture(&contacts[i])
	}
	return contacts, nil
}

// GetByID returns one contact with its picture field in public-URL form.
func (s *Service) GetByID(ctx context.Context, id string) (*Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.presentPicture(c)
	return c, nil
}

// Update overwrites name, email, phone and favourite flag, and replaces the
// picture when a new payload is supplied. The old blob is deleted
// best-effort before the new upload; its failure never fails the update.
func (s *Service) Update(ctx context.Context, id string, in Input, pic *PictureUpload) (*Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Email != in.Email {
		if err := s.checkEmailFree(ctx, in.Email); err != nil {
			return nil, err
		}
	}

	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.IsFavourite = in.IsFavourite

	var newKey *string
	if pic != nil {
		if c.Picture != nil {
			if old := s.store.KeyFromURL(*c.Picture); old != "" {
				s.cleanupBlob(ctx, old)
			}
		}
		key, err := s.uploadPicture(ctx, pic)
		if err != nil {
			return nil, err
		}
		c.Picture = &key
		newKey = &key
	} else if c.Picture != nil {
		// Keep the persisted form a bare key even if an older row stored a URL.
		key := s.store.KeyFromURL(*c.Picture)
		c.Picture = &key
	}

	updated, err := s.repo.Update(ctx, *c)
	if err != nil {
		if newKey != nil {
			s.cleanupBlob(ctx, *newKey)
		}
		return nil, err
	}
	s.presentPicture(updated)
	return updated, nil
}

// Delete removes the contact and best-effort deletes its stored picture.
// The row is deleted even when the blob delete fails.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Picture != nil {
		if key := s.store.KeyFromURL(*c.Picture); key != "" {
			s.cleanupBlob(ctx, key)
		}
	}
	return s.repo.Delete(ctx, id)
}

// checkEmailFree is the application-level pre-check; the database unique
// constraint remains the authoritative enforcement under concurrent creates.
func (s *Service) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// uploadPicture stores the payload under a fresh key and returns that key.
func (s *Service) uploadPicture(ctx context.Context, pic *PictureUpload) (string, error) {
	key := newObjectKey(pic.Filename)
	contentType := pic.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Upload(ctx, key, pic.Reader, pic.Size, contentType); err != nil {
		return "", fmt.Errorf("upload picture: %w", err)
	}
	return key, nil
}

// cleanupBlob deletes a stored object best-effort: failures are logged and
// swallowed so they never abort the surrounding mutation.
func (s *Service) cleanupBlob(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete stored picture",
			zap.String("key", key), zap.Error(err))
	}
}

// presentPicture rewrites the picture field to its public-URL form.
func (s *Service) presentPicture(c *Contact) {
	if c.Picture == nil || *c.Picture == "" {
		c.Picture = nil
		return
	}
	url := s.store.PublicURL(*c.Picture)
	c.Picture = &url
}

// newObjectKey generates a collision-resistant storage key under the
// contacts namespace, keeping the original file extension when present.
func newObjectKey(filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = defaultPictureExt
	}
	return pictureKeyPrefix + uuid.NewString() + ext
}
