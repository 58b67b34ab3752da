package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"htmxcontacts/internal/model"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     *model.User
	}{
		{name: "happy path", username: "alice", want: &model.User{ID: 1337, Username: "alice"}},
		{name: "same name twice is fine", username: "alice", want: &model.User{ID: 1337, Username: "alice"}},
		{name: "empty name is echoed", username: "", want: &model.User{ID: 1337, Username: ""}},
	}

	svc := NewUserService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(context.Background(), tt.username)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Create mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
