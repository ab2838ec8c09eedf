// Package api holds the JSON shapes exchanged with the game server and turns
// a request into the engine's board snapshot.
package api // import "github.com/tonobo/floodsnake/api"

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/grid"
)

// Request is the body of every /start, /move and /end call.
type Request struct {
	Game  *Game  `json:"game" binding:"required"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board" binding:"required"`
	You   *Snake `json:"you" binding:"required"`
}

type Game struct {
	ID      string `json:"id"`
	Timeout int    `json:"timeout,omitempty"`
}

type Board struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Food   []grid.Point `json:"food"`
	Snakes []*Snake     `json:"snakes"`
}

type Snake struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Health int          `json:"health"`
	Body   []grid.Point `json:"body"`
}

type StartResponse struct {
	Color    string `json:"color"`
	HeadType string `json:"headType,omitempty"`
	TailType string `json:"tailType,omitempty"`
}

type MoveResponse struct {
	Move  string `json:"move"`
	Taunt string `json:"taunt,omitempty"`
}

// InfoResponse answers GET / for servers that probe the snake first.
type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author,omitempty"`
	Color      string `json:"color"`
	Head       string `json:"head,omitempty"`
	Tail       string `json:"tail,omitempty"`
	Version    string `json:"version,omitempty"`
}

// Decode reads one request, as the server's access log stores it.
func Decode(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "decoding request")
	}
	if req.Game == nil || req.Board == nil || req.You == nil {
		return nil, errors.Wrap(board.ErrInvalidSnapshot, "request needs game, board and you")
	}
	return &req, nil
}

// Snapshot converts the request. Field checks are left to board.New.
func (r *Request) Snapshot() board.Snapshot {
	s := board.Snapshot{
		Width:  r.Board.Width,
		Height: r.Board.Height,
		Turn:   r.Turn,
		You:    r.You.data(),
		Food:   r.Board.Food,
	}
	for _, snake := range r.Board.Snakes {
		if snake == nil {
			continue
		}
		s.Snakes = append(s.Snakes, snake.data())
	}
	return s
}

// NewBoard is Snapshot followed by board.New.
func (r *Request) NewBoard() (*board.Board, error) {
	return board.New(r.Snapshot())
}

func (s *Snake) data() board.SnakeData {
	return board.SnakeData{ID: s.ID, Name: s.Name, Health: s.Health, Body: s.Body}
}
