package service

import (
	"context"

	"htmxcontacts/internal/model"
)

// DefaultContact returns the card every lookup resolves to. It is built on
// each call so no caller can change what the next one sees.
func DefaultContact() model.Contact {
	return model.Contact{
		FirstName: "Joe",
		LastName:  "Blow",
		Email:     "joe@blow.com",
	}
}

// ContactService defines the use cases behind the contact card.
type ContactService interface {
	// Get returns the contact for id. Every id resolves to DefaultContact().
	Get(ctx context.Context, id uint32) (model.Contact, error)

	// Update returns the submitted contact unchanged. Nothing is stored, so a
	// following Get still returns DefaultContact().
	Update(ctx context.Context, id uint32, c model.Contact) (model.Contact, error)
}

type contactService struct{}

// NewContactService constructs a new ContactService.
func NewContactService() ContactService {
	return &contactService{}
}

func (s *contactService) Get(ctx context.Context, id uint32) (model.Contact, error) {
	return DefaultContact(), nil
}

func (s *contactService) Update(ctx context.Context, id uint32, c model.Contact) (model.Contact, error) {
	return c, nil
}
