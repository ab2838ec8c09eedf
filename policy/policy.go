// Package policy picks a move for the player each turn. It narrows the four
// directions in stages: moves that do not die now, moves that do not walk
// into a worse pocket or a bigger snake's reach, then the first step of a
// path toward the closest food (or the player's own tail). When every stage
// comes up empty it still answers, falling back to random walks and finally
// a fixed direction.
package policy // import "github.com/tonobo/floodsnake/policy"

import (
	"io/ioutil"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/grid"
)

// Goal selects what to head for when no food can be reached.
type Goal int

const (
	GoalTail Goal = iota
	GoalNone
)

// WalkMode is the tie-break rule used when walking without a goal.
type WalkMode int

const (
	// WalkSeeded draws uniformly, seeded from the board fingerprint.
	WalkSeeded WalkMode = iota
	// WalkFirst takes the first move in canonical order.
	WalkFirst
)

// DefaultDirection is answered when the player has no valid move left.
const DefaultDirection = grid.Up

// Reason names the stage that produced a decision.
type Reason string

const (
	ReasonFood       Reason = "food"
	ReasonTail       Reason = "tail"
	ReasonSmartWalk  Reason = "smart-walk"
	ReasonRandomWalk Reason = "random-walk"
	ReasonDefault    Reason = "default"
	// ReasonTimeout is set by callers that gave up waiting for Decide.
	ReasonTimeout Reason = "timeout"
)

type Options struct {
	Fallback Goal
	Walk     WalkMode
	Log      log.FieldLogger
}

type Decision struct {
	Direction grid.Direction
	Reason    Reason
}

// Policy holds configuration only and can serve concurrent games.
type Policy struct {
	opts Options
	log  log.FieldLogger
}

func New(opts Options) *Policy {
	p := &Policy{opts: opts, log: opts.Log}
	if p.log == nil {
		discard := log.New()
		discard.Out = ioutil.Discard
		p.log = discard
	}
	return p
}

// Decide always returns a move, even for a player that cannot survive.
func (p *Policy) Decide(b *board.Board) Decision {
	t := p.Begin(b)
	l := p.log.WithField("turn", b.Turn)

	if d, ok := t.EatClosestFood(); ok {
		if t.IsSmartMove(d) {
			return Decision{Direction: d, Reason: ReasonFood}
		}
		l.WithField("move", d).Debug("no smart move to food")
	} else if p.opts.Fallback == GoalTail {
		l.Debug("no path to food")
		if d, ok := t.ChaseTail(); ok {
			if t.IsSmartMove(d) {
				return Decision{Direction: d, Reason: ReasonTail}
			}
			l.WithField("move", d).Debug("no smart move to tail")
		}
	}

	if d, ok := t.SmartWalk(); ok {
		return Decision{Direction: d, Reason: ReasonSmartWalk}
	}
	l.Debug("no smart moves")
	if d, ok := t.RandomWalk(); ok {
		return Decision{Direction: d, Reason: ReasonRandomWalk}
	}
	l.Debug("trapped")
	return Decision{Direction: DefaultDirection, Reason: ReasonDefault}
}

// Begin prepares the per-turn state used by the individual actions.
func (p *Policy) Begin(b *board.Board) *Turn {
	t := &Turn{board: b, walk: p.opts.Walk, log: p.log}
	if t.walk == WalkSeeded {
		t.rng = rand.New(rand.NewSource(int64(b.Fingerprint())))
	}
	return t
}

// FirstValid is the cheap answer used when a decision runs out of time: the
// first direction that does not hit anything, without any pocket analysis.
func FirstValid(b *board.Board) grid.Direction {
	for _, d := range grid.Directions {
		if !b.Blocked(b.Player.Head.Move(d)) {
			return d
		}
	}
	return DefaultDirection
}
