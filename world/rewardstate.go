package world

// RewardState is a per-run overlay of reward-collection flags over a
// graph's immutable reward placement. Each search invocation or agent
// walk owns its own overlay, so independent runs on one shared graph
// can never contaminate each other; Reset supports callers that reuse
// a single overlay across sequential runs instead.
//
// The overlay is a bitset keyed by NodeID. Not safe for concurrent
// mutation; give each goroutine its own RewardState.
type RewardState struct {
	g         *Graph
	collected []uint64
	count     int
}

// NewRewardState returns a fresh overlay for g with nothing collected.
func NewRewardState(g *Graph) *RewardState {
	return &RewardState{
		g:         g,
		collected: make([]uint64, (g.NodeCount()+63)/64),
	}
}

// Collect marks the reward at id as collected. It reports true only
// the first time a reward-carrying node is collected; collecting a
// node without a reward, or an already-collected one, is a no-op.
func (s *RewardState) Collect(id NodeID) bool {
	if !s.g.Node(id).HasReward || s.Collected(id) {
		return false
	}
	s.collected[id/64] |= 1 << (uint(id) % 64)
	s.count++
	return true
}

// Collected reports whether the reward at id has been collected in
// this overlay.
func (s *RewardState) Collected(id NodeID) bool {
	return s.collected[id/64]&(1<<(uint(id)%64)) != 0
}

// Reset clears every collected flag without altering placement. Call
// it between independent runs sharing one overlay.
func (s *RewardState) Reset() {
	for i := range s.collected {
		s.collected[i] = 0
	}
	s.count = 0
}

// CollectedCount returns how many rewards have been collected.
func (s *RewardState) CollectedCount() int { return s.count }

// Remaining returns the ids of reward nodes not yet collected, in
// placement order.
func (s *RewardState) Remaining() []NodeID {
	var out []NodeID
	for _, id := range s.g.rewards {
		if !s.Collected(id) {
			out = append(out, id)
		}
	}
	return out
}
