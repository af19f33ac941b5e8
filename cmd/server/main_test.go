package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/cricklet/chessbits/internal/movegen"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generator = movegen.DefaultGenerator()

func ptr[T any](t T) *T {
	return &t
}

func TestSessionSelection(t *testing.T) {
	s := newSession(generator, &SilentLogger)

	update := s.handle(MessageFromWeb{Selection: ptr("g1")})
	assert.Equal(t, "g1", update.Selection)
	assert.Equal(t, []string{"g1f3", "g1h3"}, update.PossibleMoves)
	assert.Equal(t, "white", update.Player)
	assert.Equal(t, StartingBoard.StateString(), update.State)
	assert.Equal(t, "", update.Error)

	update = s.handle(MessageFromWeb{Selection: ptr("")})
	assert.Equal(t, []string{}, update.PossibleMoves)
}

func TestSessionMoveAndRewind(t *testing.T) {
	s := newSession(generator, &SilentLogger)

	update := s.handle(MessageFromWeb{Move: ptr("e2e4")})
	assert.Equal(t, "", update.Error)
	assert.Equal(t, "black", update.Player)
	assert.Equal(t, "e2e4", update.LastMove)

	update = s.handle(MessageFromWeb{Move: ptr("e2e4")})
	assert.Contains(t, update.Error, "move is not available")
	assert.Equal(t, "black", update.Player)

	update = s.handle(MessageFromWeb{Rewind: ptr(1)})
	assert.Equal(t, "white", update.Player)
	assert.Equal(t, "", update.LastMove)
	assert.Equal(t, StartingBoard.StateString(), update.State)
}

func TestSessionSetState(t *testing.T) {
	s := newSession(generator, &SilentLogger)

	state := "R" + strings.Repeat("0", 7) + "p" + strings.Repeat("0", 55)
	update := s.handle(MessageFromWeb{State: &state, Player: ptr("w")})
	assert.Equal(t, "", update.Error)
	assert.Equal(t, state, update.State)

	update = s.handle(MessageFromWeb{Selection: ptr("a1")})
	assert.Equal(t, []string{"a1b1", "a1c1", "a1d1", "a1e1", "a1f1", "a1g1", "a1h1", "a1a2"}, update.PossibleMoves)

	update = s.handle(MessageFromWeb{State: ptr("bad")})
	assert.Contains(t, update.Error, "invalid board state")
	assert.Equal(t, state, update.State)

	update = s.handle(MessageFromWeb{Player: ptr("black")})
	assert.Equal(t, "black", update.Player)
	update = s.handle(MessageFromWeb{Selection: ptr("a2")})
	assert.Equal(t, []string{}, update.PossibleMoves)
}

func TestWebsocketRoundTrip(t *testing.T) {
	server := httptest.NewServer(newRouter(generator))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()

	var update UpdateToWeb
	require.NoError(t, c.ReadJSON(&update))
	assert.Equal(t, StartingBoard.StateString(), update.State)
	assert.Equal(t, "white", update.Player)

	require.NoError(t, c.WriteJSON(MessageFromWeb{Selection: ptr("b1")}))
	require.NoError(t, c.ReadJSON(&update))
	assert.Equal(t, []string{"b1a3", "b1c3"}, update.PossibleMoves)

	require.NoError(t, c.WriteJSON(MessageFromWeb{Move: ptr("b1c3")}))
	update = UpdateToWeb{}
	require.NoError(t, c.ReadJSON(&update))
	assert.Equal(t, "black", update.Player)
	assert.Equal(t, "b1c3", update.LastMove)
}
