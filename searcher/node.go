package searcher

import (
	"math"
	"reversi/game"
	"sync"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const (
	Win  = 1.0
	Loss = -Win // Also the virtual loss applied while a simulation is in flight
	Tie  = 0.0
)

// node is a position in the search tree. Statistics are kept from the point of
// view of the side whose move led here, which is what its parent maximises.
type node struct {
	sync.RWMutex
	parent   *node
	mover    game.Side // Empty at the root
	moves    []game.Coord
	children []*node // children[i] follows moves[i]
	rewards  float64
	visits   float64
}

func newNode(parent *node, mover game.Side, state *game.GameState) *node {
	moves := state.LegalMoves()
	return &node{
		parent:   parent,
		mover:    mover,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand descends one level, playing the chosen move on state. It adds a
// child for the next unexplored move if there is one, and otherwise selects the
// child with the highest UCT value. descend is false once a new or terminal node
// is reached.
func (n *node) selectOrExpand(state *game.GameState) (child *node, descend bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		move := n.moves[len(n.children)]
		mover := state.Player()
		mustPlay(state, move)
		child := newNode(n, mover, state)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, false
	}

	// Fully expanded node
	ith := n.pickChild()
	child = n.children[ith]
	mustPlay(state, n.moves[ith])
	child.applyLoss()
	return child, true
}

func (n *node) pickChild() int {
	total := 0.0
	for _, child := range n.children {
		total += child.visitCount()
	}
	normalizer := CSquared * math.Log(total)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := child.score(normalizer); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) score(normalizer float64) float64 {
	n.RLock()
	defer n.RUnlock()

	return uct(n.rewards, n.visits, normalizer)
}

func (n *node) visitCount() float64 {
	n.RLock()
	defer n.RUnlock()

	return n.visits
}

// backup records the outcome of a simulation and returns the parent.
func (n *node) backup(winner game.Side) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= Loss
		n.visits--
	}

	n.rewards += reward(winner, n.mover)
	n.visits++

	return n.parent
}

// bestMoves returns the most visited moves.
func (n *node) bestMoves() ([]game.Coord, float64) {
	n.RLock()
	defer n.RUnlock()

	maxVisits := -1.0
	var best []game.Coord
	for i, child := range n.children {
		v := child.visitCount()
		if v > maxVisits {
			maxVisits = v
			best = best[:0]
		}
		if v == maxVisits {
			best = append(best, n.moves[i])
		}
	}
	return best, maxVisits
}

// uct = q/n + sqrt(c^2*ln(N)/n)
func uct(rewards, visits, normalizer float64) float64 {
	if visits == 0 { // Prevent division by zero
		panic("cannot compute UCT: 0 visits")
	}
	return rewards/visits + math.Sqrt(normalizer/visits)
}

func reward(winner, mover game.Side) float64 {
	switch winner {
	case game.Empty:
		return Tie
	case mover:
		return Win
	default:
		return Loss
	}
}

func mustPlay(state *game.GameState, move game.Coord) {
	if _, err := state.Play(move); err != nil {
		panic(err)
	}
}
