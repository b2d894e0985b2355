package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	steamerrors "github.com/lepinkainen/steamstats/internal/errors"
)

func newTestResponder() *CommandResponder {
	return NewCommandResponder(Tools(loadedSession(nil)))
}

func TestResponderHelp(t *testing.T) {
	r := newTestResponder()

	for _, input := range []string{"help", "?", "", "   "} {
		reply, err := r.Respond(context.Background(), input)
		require.NoError(t, err)
		assert.Contains(t, reply, "summary")
		assert.Contains(t, reply, "find <name>")
	}
}

func TestResponderUnknownCommand(t *testing.T) {
	r := newTestResponder()

	reply, err := r.Respond(context.Background(), "frobnicate")
	require.NoError(t, err)
	assert.Contains(t, reply, "Unknown command")
	assert.Contains(t, reply, "frobnicate")
}

func TestResponderSummary(t *testing.T) {
	r := newTestResponder()

	reply, err := r.Respond(context.Background(), "summary")
	require.NoError(t, err)
	assert.Contains(t, reply, `"total_games": 4`)
	assert.Contains(t, reply, "Counter-Strike 2")
}

func TestResponderTopWithCount(t *testing.T) {
	r := newTestResponder()

	reply, err := r.Respond(context.Background(), "top 1")
	require.NoError(t, err)
	assert.Contains(t, reply, "Counter-Strike 2")
	assert.NotContains(t, reply, "Dota 2")
}

func TestResponderFind(t *testing.T) {
	r := newTestResponder()

	reply, err := r.Respond(context.Background(), "find half-life")
	require.NoError(t, err)
	assert.Contains(t, reply, "Half-Life")

	reply, err = r.Respond(context.Background(), "find")
	require.NoError(t, err)
	assert.Contains(t, reply, "Usage:")
}

func TestResponderCaseInsensitiveCommand(t *testing.T) {
	r := newTestResponder()

	reply, err := r.Respond(context.Background(), "UNPLAYED")
	require.NoError(t, err)
	assert.Contains(t, reply, "Portal")
}

func TestResponderPropagatesMissingData(t *testing.T) {
	r := NewCommandResponder(Tools(NewSession(nil)))

	_, err := r.Respond(context.Background(), "summary")
	require.Error(t, err)
	assert.True(t, steamerrors.IsNoData(err))
}
