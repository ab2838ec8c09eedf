package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/tonobo/floodsnake/api"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/grid"
	"github.com/tonobo/floodsnake/policy"
)

const moveRequest = `{
  "game": {"id": "game-1"},
  "turn": 3,
  "board": {
    "height": 11,
    "width": 11,
    "food": [{"x": 5, "y": 0}],
    "snakes": [
      {"id": "me", "name": "floodsnake", "health": 90, "body": [{"x": 5, "y": 5}, {"x": 4, "y": 5}]}
    ]
  },
  "you": {"id": "me", "name": "floodsnake", "health": 90, "body": [{"x": 5, "y": 5}, {"x": 4, "y": 5}]}
}`

func init() { gin.SetMode(gin.TestMode) }

func quietLogger() *log.Logger {
	l := log.New()
	l.Out = ioutil.Discard
	return l
}

func newTestServer(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = quietLogger()
	}
	return New(opts)
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestMove(t *testing.T) {
	s := newTestServer(Options{MoveBudget: time.Second})
	w := post(t, s, "/move", moveRequest)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.MoveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "up", resp.Move)
	require.Equal(t, "food", resp.Taunt)
}

func TestMoveDebugRendersBoard(t *testing.T) {
	var buf strings.Builder
	l := log.New()
	l.Out = &buf
	l.Level = log.DebugLevel

	s := newTestServer(Options{Log: l})
	require.Equal(t, http.StatusOK, post(t, s, "/move", moveRequest).Code)
	require.Contains(t, buf.String(), "mM")
}

func TestMoveBadJSON(t *testing.T) {
	s := newTestServer(Options{})
	w := post(t, s, "/move", `{"game": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestMoveMissingFields(t *testing.T) {
	s := newTestServer(Options{})
	w := post(t, s, "/move", `{"turn": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoveInvalidSnapshot(t *testing.T) {
	s := newTestServer(Options{})
	w := post(t, s, "/move", `{"game": {"id": "g"}, "board": {"width": 0, "height": 3}, "you": {"id": "me", "body": [{"x": 0, "y": 0}]}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid snapshot")
}

func TestStartEndPing(t *testing.T) {
	s := newTestServer(Options{Color: "#ff00ff", HeadType: "bendr"})

	w := post(t, s, "/start", moveRequest)
	require.Equal(t, http.StatusOK, w.Code)
	var start api.StartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &start))
	require.Equal(t, api.StartResponse{Color: "#ff00ff", HeadType: "bendr"}, start)

	require.Equal(t, http.StatusOK, post(t, s, "/end", moveRequest).Code)
	require.Equal(t, http.StatusOK, post(t, s, "/ping", `{}`).Code)
}

func TestInfo(t *testing.T) {
	s := newTestServer(Options{Color: "#123456"})
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var info api.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, "1", info.APIVersion)
	require.Equal(t, "#123456", info.Color)
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "head.svg"), []byte("<svg/>"), 0644))

	s := newTestServer(Options{StaticDir: dir})
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/head.svg", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "<svg/>", w.Body.String())
}

func TestRecorder(t *testing.T) {
	rec, err := NewRecorder(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	s := newTestServer(Options{Recorder: rec})
	require.Equal(t, http.StatusOK, post(t, s, "/move", moveRequest).Code)
	require.Equal(t, http.StatusOK, post(t, s, "/end", moveRequest).Code)

	f, err := os.Open(filepath.Join(rec.Dir, "access-snake-floodsnake-game-1.log"))
	require.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		req, err := api.Decode(strings.NewReader(scanner.Text()))
		require.NoError(t, err)
		require.Equal(t, "game-1", req.Game.ID)
		lines++
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, 2, lines)
}

func TestDecideOverBudgetFallsBack(t *testing.T) {
	s := newTestServer(Options{})
	b, err := board.New(board.Snapshot{
		Width: 3, Height: 3,
		You: board.SnakeData{ID: "me", Body: []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// an expired context may still race with a fast decision; both answers
	// must be safe
	d := s.decide(ctx, b)
	require.False(t, b.Blocked(b.Player.Head.Move(d.Direction)))
	if d.Reason == policy.ReasonTimeout {
		require.Equal(t, grid.Right, d.Direction)
	}
}
