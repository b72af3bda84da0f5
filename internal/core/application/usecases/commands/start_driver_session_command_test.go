package commands_test

import (
	"errors"
	"testing"

	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/domain/model/flow"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStartDriverSessionCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartDriverSessionCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SessionID())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewStartDriverSessionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, commands.StartDriverSessionCommand{}.Validate(), commands.ErrStartDriverSessionCommandIsNotConstructed)
}

func TestStartDriverSessionCommandHandler_Handle(t *testing.T) {
	t.Run("should store a session at welcome", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewStartDriverSessionCommand(id)

		sessions := new(MockSessionRepository)
		sessions.On("Add", ctx, mock.MatchedBy(func(s *session.Session) bool {
			return s.ID().IsEqual(id) && s.State().Step() == flow.Welcome && s.StartedAt().Equal(testClock.now)
		})).Return(nil).Once()

		h := commands.NewStartDriverSessionCommandHandler(sessions, testRegistry, testClock)
		require.NoError(t, h.Handle(ctx, cmd))
		sessions.AssertExpectations(t)
	})

	t.Run("should surface store error", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewStartDriverSessionCommand(kernel.NewUUID())

		sessions := new(MockSessionRepository)
		sessions.On("Add", ctx, mock.Anything).Return(errors.New("full")).Once()

		h := commands.NewStartDriverSessionCommandHandler(sessions, testRegistry, testClock)
		require.Error(t, h.Handle(ctx, cmd))
	})

	t.Run("should reject command not built by constructor", func(t *testing.T) {
		h := commands.NewStartDriverSessionCommandHandler(new(MockSessionRepository), testRegistry, testClock)
		require.Error(t, h.Handle(t.Context(), commands.StartDriverSessionCommand{}))
	})
}
