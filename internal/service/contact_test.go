package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"htmxcontacts/internal/model"
)

func TestContactService_Get(t *testing.T) {
	svc := NewContactService()

	for _, id := range []uint32{0, 1, 42, 4294967295} {
		got, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		if diff := cmp.Diff(DefaultContact(), got); diff != "" {
			t.Errorf("Get(%d) mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestContactService_UpdateDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService()
	submitted := model.Contact{FirstName: "Jane", LastName: "Doe", Email: "jane@doe.com"}

	got, err := svc.Update(ctx, 1, submitted)
	require.NoError(t, err)
	if diff := cmp.Diff(submitted, got); diff != "" {
		t.Errorf("Update mismatch (-want +got):\n%s", diff)
	}

	after, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultContact(), after); diff != "" {
		t.Errorf("Get after Update mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultContact_CallerCopiesAreIndependent(t *testing.T) {
	c := DefaultContact()
	c.FirstName = "Mallory"
	require.Equal(t, "Mallory", c.FirstName)

	if diff := cmp.Diff(model.Contact{FirstName: "Joe", LastName: "Blow", Email: "joe@blow.com"}, DefaultContact()); diff != "" {
		t.Errorf("DefaultContact changed (-want +got):\n%s", diff)
	}
}
