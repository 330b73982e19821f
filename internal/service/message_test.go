package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository/repotest"
)

func TestMessageService_CreateMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  CreateMessageParams
		wantErr bool
	}{
		{name: "valid", params: CreateMessageParams{Name: "Ayşe", Email: "a@example.com", Body: "Merhaba"}},
		{name: "blank name", params: CreateMessageParams{Name: "  ", Email: "a@example.com", Body: "Merhaba"}, wantErr: true},
		{name: "blank email", params: CreateMessageParams{Name: "Ayşe", Body: "Merhaba"}, wantErr: true},
		{name: "blank body", params: CreateMessageParams{Name: "Ayşe", Email: "a@example.com", Body: "\n"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repotest.MessageRepository{}
			svc := NewMessageService(newValidator(), repo)

			_, err := svc.CreateMessage(ctx, tt.params)
			if tt.wantErr {
				require.ErrorIs(t, err, apperr.ValidationErr)
				assert.Empty(t, repo.Messages)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.Messages, 1)
		})
	}
}

func TestMessageService_UnreadLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &repotest.MessageRepository{}
	svc := NewMessageService(newValidator(), repo)

	id, err := svc.CreateMessage(ctx, CreateMessageParams{Name: " Ali ", Email: "ali@example.com", Body: "Fiyat?"})
	require.NoError(t, err)
	assert.Equal(t, "Ali", repo.Messages[0].Name)

	n, err := svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, svc.MarkRead(ctx, id))
	require.NoError(t, svc.MarkRead(ctx, id))
	n, err = svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, svc.DeleteMessage(ctx, id))
	require.NoError(t, svc.DeleteMessage(ctx, id))
	msgs, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
