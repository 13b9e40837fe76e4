// Package pathfind routes fleets across the star map. A Search is created per
// fleet, computed once, then consumed a step at a time as the fleet moves.
package pathfind

import (
	"container/heap"

	"github.com/talgya/realmfleet/internal/galaxy"
)

// Blocked reports whether a cell can never be entered.
type Blocked func(galaxy.Coord) bool

type options struct {
	diagonal         bool
	allowBlockedGoal bool
	maxRadius        int
}

// Option tunes a Search.
type Option func(*options)

// Diagonal allows eight-way movement. Without it only cardinal steps are used.
func Diagonal() Option {
	return func(o *options) { o.diagonal = true }
}

// AllowBlockedGoal routes to a goal cell that is itself blocked (a sun, an
// occupied anchor). The route stops on the last free cell before the goal.
func AllowBlockedGoal() Option {
	return func(o *options) { o.allowBlockedGoal = true }
}

// MaxRadius bounds the search to cells within r steps of the start.
func MaxRadius(r int) Option {
	return func(o *options) { o.maxRadius = r }
}

// Search is a stateful route from start to goal.
type Search struct {
	start, goal galaxy.Coord
	blocked     Blocked
	opts        options

	path  []galaxy.Coord
	route []galaxy.Coord
	pos   int
}

// New prepares a search. Nothing is computed until Compute is called.
func New(start, goal galaxy.Coord, blocked Blocked, opts ...Option) *Search {
	s := &Search{start: start, goal: goal, blocked: blocked}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Start returns the search origin.
func (s *Search) Start() galaxy.Coord { return s.start }

// Goal returns the search target.
func (s *Search) Goal() galaxy.Coord { return s.goal }

type node struct {
	c     galaxy.Coord
	g, f  int
	index int
}

type openSet []*node

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f == o[j].f {
		return o[i].g > o[j].g
	}
	return o[i].f < o[j].f
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*o)
	*o = append(*o, n)
}
func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*o = old[:len(old)-1]
	return n
}

func (s *Search) heuristic(c galaxy.Coord) int {
	if s.opts.diagonal {
		return c.Steps(s.goal)
	}
	dx, dy := c.X-s.goal.X, c.Y-s.goal.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (s *Search) passable(c galaxy.Coord) bool {
	if s.opts.maxRadius > 0 && c.Steps(s.start) > s.opts.maxRadius {
		return false
	}
	if c == s.goal && s.opts.allowBlockedGoal {
		return true
	}
	return s.blocked == nil || !s.blocked(c)
}

// Compute runs A* and reports whether the goal is reachable. The computed
// path excludes the start cell.
func (s *Search) Compute() bool {
	s.path = nil
	s.route = nil
	s.pos = 0
	if s.start == s.goal {
		return true
	}
	if !s.passable(s.goal) {
		return false
	}

	cameFrom := make(map[galaxy.Coord]galaxy.Coord)
	best := map[galaxy.Coord]int{s.start: 0}
	open := &openSet{}
	heap.Push(open, &node{c: s.start, f: s.heuristic(s.start)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if cur.c == s.goal {
			s.path = reconstruct(cameFrom, s.start, s.goal)
			return true
		}
		if cur.g > best[cur.c] {
			continue
		}
		for _, next := range s.neighbors(cur.c) {
			if !s.passable(next) {
				continue
			}
			g := cur.g + 1
			if old, seen := best[next]; seen && g >= old {
				continue
			}
			best[next] = g
			cameFrom[next] = cur.c
			heap.Push(open, &node{c: next, g: g, f: g + s.heuristic(next)})
		}
	}
	return false
}

func (s *Search) neighbors(c galaxy.Coord) []galaxy.Coord {
	if s.opts.diagonal {
		n := c.Neighbors8()
		return n[:]
	}
	n := c.Neighbors4()
	return n[:]
}

func reconstruct(cameFrom map[galaxy.Coord]galaxy.Coord, start, goal galaxy.Coord) []galaxy.Coord {
	var rev []galaxy.Coord
	for c := goal; c != start; c = cameFrom[c] {
		rev = append(rev, c)
	}
	path := make([]galaxy.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// Route turns the computed path into the move sequence the fleet consumes.
// With straight set, a clear straight line from start to goal replaces the
// A* path when it is no longer. A blocked goal is dropped from the route.
func (s *Search) Route(straight bool) {
	route := s.path
	if straight {
		if line := s.line(); line != nil && len(line) <= len(route) {
			route = line
		}
	}
	if len(route) > 0 && route[len(route)-1] == s.goal && s.blocked != nil && s.blocked(s.goal) {
		route = route[:len(route)-1]
	}
	s.route = route
	s.pos = 0
}

// line walks a Bresenham line from start to goal, returning nil when any cell
// on it is blocked or when a diagonal step is needed without Diagonal.
func (s *Search) line() []galaxy.Coord {
	if !s.opts.diagonal {
		return nil
	}
	x0, y0, x1, y1 := s.start.X, s.start.Y, s.goal.X, s.goal.Y
	dx, dy := x1-x0, y1-y0
	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}
	err := dx - dy
	var out []galaxy.Coord
	for x0 != x1 || y0 != y1 {
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		c := galaxy.Coord{X: x0, Y: y0}
		if !s.passable(c) {
			return nil
		}
		out = append(out, c)
	}
	return out
}

// NextPoint returns the next step without consuming it.
func (s *Search) NextPoint() (galaxy.Coord, bool) {
	if s.pos >= len(s.route) {
		return galaxy.Coord{}, false
	}
	return s.route[s.pos], true
}

// Advance commits the step returned by NextPoint.
func (s *Search) Advance() {
	if s.pos < len(s.route) {
		s.pos++
	}
}

// IsFinalStep reports whether the next step is the last one.
func (s *Search) IsFinalStep() bool {
	return s.pos == len(s.route)-1
}

// Remaining returns the number of unconsumed steps.
func (s *Search) Remaining() int {
	return len(s.route) - s.pos
}
