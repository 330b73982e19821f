package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

func TestMessageRepository(t *testing.T) {
	withTestTx(t, func(ctx context.Context, tx db.DB) {
		repo := repository.NewMessageRepository(tx)

		before, err := repo.CountUnread(ctx)
		require.NoError(t, err)

		id, err := repo.CreateMessage(ctx, repository.CreateMessageParams{
			Name:  "Ayşe",
			Email: "ayse@example.com",
			Body:  "10 adet stand istiyorum",
		})
		require.NoError(t, err)

		count, err := repo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, count)

		msgs, err := repo.ListMessages(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, msgs)
		assert.Equal(t, id, msgs[0].ID)
		assert.Equal(t, "10 adet stand istiyorum", msgs[0].Body)
		assert.False(t, msgs[0].IsRead)

		require.NoError(t, repo.MarkRead(ctx, id))
		require.NoError(t, repo.MarkRead(ctx, id))

		count, err = repo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, count)

		require.NoError(t, repo.DeleteMessage(ctx, id))
		require.NoError(t, repo.DeleteMessage(ctx, id))

		msgs, err = repo.ListMessages(ctx)
		require.NoError(t, err)
		for _, m := range msgs {
			assert.NotEqual(t, id, m.ID)
		}
	})
}
