package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"htmxcontacts/internal/model"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Get(ctx context.Context, id uint32) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id uint32, c model.Contact) (model.Contact, error) {
	args := m.Called(ctx, id, c)
	return args.Get(0).(model.Contact), args.Error(1)
}
