package graph

// ProtectedSet computes the IDs that pruning must preserve: every
// ticket reachable by following deps edges from any active ticket. An
// active ticket cannot close while a dependency is unmet, so the whole
// dependency chain under it stays load-bearing even when the chain
// itself is closed.
//
// The traversal is a full reachability closure with an explicit work
// stack and a visited set: each ID is visited at most once, so it is
// O(V+E) and terminates on cyclic graphs. Depth-limited or direct-only
// variants are wrong here; stopping at the first level would expose
// transitively required closed tickets to deletion.
//
// Advisory parent references are deliberately not followed: a closed
// ticket that is only the parent of an open child is not protected.
func (g *Graph) ProtectedSet() map[string]bool {
	protected := make(map[string]bool)
	var stack []string

	for _, t := range g.tickets {
		if !t.Active() {
			continue
		}
		protected[t.ID] = true
		stack = append(stack, t.Deps...)
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if protected[id] {
			continue
		}
		protected[id] = true
		if t, ok := g.byID[id]; ok {
			stack = append(stack, t.Deps...)
		}
	}
	return protected
}
