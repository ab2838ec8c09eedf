// Package server exposes the move policy over the snake HTTP API with gin.
package server // import "github.com/tonobo/floodsnake/server"

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tonobo/floodsnake/api"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/policy"
)

type Options struct {
	Policy *policy.Policy
	// MoveBudget bounds the time spent deciding. Zero disables the limit.
	MoveBudget time.Duration
	Color      string
	HeadType   string
	TailType   string
	StaticDir  string
	// Recorder, when set, receives every /move and /end request.
	Recorder *Recorder
	Log      *log.Logger
}

type Server struct {
	opts   Options
	log    *log.Logger
	engine *gin.Engine
}

func New(opts Options) *Server {
	if opts.Policy == nil {
		opts.Policy = policy.New(policy.Options{})
	}
	s := &Server{opts: opts, log: opts.Log}
	if s.log == nil {
		s.log = log.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery(), instrument)
	r.GET("/", s.info)
	r.POST("/start", s.start)
	r.POST("/move", s.move)
	r.POST("/end", s.end)
	r.POST("/ping", s.ping)
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}
	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	s.log.WithField("addr", addr).Info("snake listening")
	return s.engine.Run(addr)
}

func (s *Server) info(c *gin.Context) {
	c.JSON(http.StatusOK, api.InfoResponse{
		APIVersion: "1",
		Author:     "tonobo",
		Color:      s.opts.Color,
		Head:       s.opts.HeadType,
		Tail:       s.opts.TailType,
	})
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) start(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	s.log.WithField("game", req.Game.ID).Info("starting game")
	c.JSON(http.StatusOK, api.StartResponse{
		Color:    s.opts.Color,
		HeadType: s.opts.HeadType,
		TailType: s.opts.TailType,
	})
}

func (s *Server) end(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	s.record(req)
	s.log.WithFields(log.Fields{"game": req.Game.ID, "turn": req.Turn}).Info("end game")
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) move(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	b, err := req.NewBoard()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.record(req)

	ctx := c.Request.Context()
	if s.opts.MoveBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.MoveBudget)
		defer cancel()
	}
	started := time.Now()
	decision := s.decide(ctx, b)

	entry := s.log.WithFields(log.Fields{
		"game":    req.Game.ID,
		"turn":    req.Turn,
		"move":    decision.Direction,
		"reason":  decision.Reason,
		"eats":    b.HasFood(b.Player.Head.Move(decision.Direction)),
		"elapsed": time.Since(started),
	})
	entry.Info("move")
	if s.log.IsLevelEnabled(log.DebugLevel) {
		var grid strings.Builder
		b.Render(&grid)
		entry.Debug("\n" + grid.String())
	}
	c.JSON(http.StatusOK, api.MoveResponse{
		Move:  decision.Direction.String(),
		Taunt: string(decision.Reason),
	})
}

// decide runs the policy in the background so that a slow turn can still be
// answered in time. The policy is bounded by the board size, so an abandoned
// decision finishes on its own.
func (s *Server) decide(ctx context.Context, b *board.Board) policy.Decision {
	done := make(chan policy.Decision, 1)
	started := time.Now()
	go func() {
		done <- s.opts.Policy.Decide(b)
	}()
	select {
	case d := <-done:
		decisionDuration.WithLabelValues(string(d.Reason)).Observe(time.Since(started).Seconds())
		return d
	case <-ctx.Done():
		s.log.WithError(ctx.Err()).WithField("turn", b.Turn).Warn("decision over budget")
		decisionDuration.WithLabelValues(string(policy.ReasonTimeout)).Observe(time.Since(started).Seconds())
		return policy.Decision{Direction: policy.FirstValid(b), Reason: policy.ReasonTimeout}
	}
}

func (s *Server) bind(c *gin.Context) (*api.Request, bool) {
	var req api.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

func (s *Server) record(req *api.Request) {
	if s.opts.Recorder == nil {
		return
	}
	if err := s.opts.Recorder.Record(req); err != nil {
		s.log.WithError(err).WithField("game", req.Game.ID).Warn("failed to record request")
	}
}
