package qreg

import "sort"

/*
EntanglementTracker partitions register indices into disjoint entanglement
groups. It is the single source of truth for "is this qubit entangled":
qubits themselves carry no group data, so the bookkeeping cannot
desynchronize.

Groups hold at least two members. Binding two ungrouped indices creates a
group, binding into an existing group adopts, and binding across two
groups merges them (union), unless strict mode forbids the merge.
Measuring any member dissolves the whole group in one step.
*/
type EntanglementTracker struct {
	membership map[int]int   // index -> group id
	members    map[int][]int // group id -> indices, ascending
	nextID     int
	strict     bool
}

func NewEntanglementTracker(strict bool) *EntanglementTracker {
	return &EntanglementTracker{
		membership: make(map[int]int),
		members:    make(map[int][]int),
		strict:     strict,
	}
}

/*
Bind groups indices a and b together. Neither grouped: a new two-member
group is created. Exactly one grouped: the other joins that group. Both
grouped in distinct groups: the groups merge, or the call fails with
ErrAlreadyBound in strict mode. Binding two members of the same group is
a no-op.
*/
func (t *EntanglementTracker) Bind(a, b int) error {
	ga, okA := t.membership[a]
	gb, okB := t.membership[b]

	switch {
	case !okA && !okB:
		id := t.nextID
		t.nextID++
		t.members[id] = sorted(a, b)
		t.membership[a] = id
		t.membership[b] = id
	case okA && !okB:
		t.adopt(ga, b)
	case !okA && okB:
		t.adopt(gb, a)
	case ga != gb:
		if t.strict {
			return ErrAlreadyBound
		}
		t.merge(ga, gb)
	}
	return nil
}

// GroupOf returns the ascending member list of the group containing index,
// or false when the index is ungrouped. The slice is a copy.
func (t *EntanglementTracker) GroupOf(index int) ([]int, bool) {
	id, ok := t.membership[index]
	if !ok {
		return nil, false
	}
	group := make([]int, len(t.members[id]))
	copy(group, t.members[id])
	return group, true
}

// Grouped reports whether index belongs to any group.
func (t *EntanglementTracker) Grouped(index int) bool {
	_, ok := t.membership[index]
	return ok
}

/*
Dissolve removes the entire group containing index. The caller is
responsible for resetting each member's state to a classical value in the
same logical step; the measurement protocol does this during collapse.
Dissolving an ungrouped index is a no-op.
*/
func (t *EntanglementTracker) Dissolve(index int) {
	id, ok := t.membership[index]
	if !ok {
		return
	}
	for _, m := range t.members[id] {
		delete(t.membership, m)
	}
	delete(t.members, id)
}

/*
Remap exchanges the group membership of indices i and j. The Swap gate
moves qubit state between arena slots, so the tracker must follow the
slots rather than re-derive membership by value.
*/
func (t *EntanglementTracker) Remap(i, j int) {
	gi, okI := t.membership[i]
	gj, okJ := t.membership[j]
	if okI == okJ && gi == gj {
		return
	}

	if okI {
		t.replaceMember(gi, i, j)
	}
	if okJ {
		t.replaceMember(gj, j, i)
	}

	switch {
	case okI && okJ:
		t.membership[i], t.membership[j] = gj, gi
	case okI:
		delete(t.membership, i)
		t.membership[j] = gi
	case okJ:
		delete(t.membership, j)
		t.membership[i] = gj
	}
}

// Groups returns every group's ascending member list, ordered by each
// group's smallest member. Diagnostics only.
func (t *EntanglementTracker) Groups() [][]int {
	groups := make([][]int, 0, len(t.members))
	for id := range t.members {
		group := make([]int, len(t.members[id]))
		copy(group, t.members[id])
		groups = append(groups, group)
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a][0] < groups[b][0]
	})
	return groups
}

// Reset drops every group. Used when the register is cleared wholesale.
func (t *EntanglementTracker) Reset() {
	t.membership = make(map[int]int)
	t.members = make(map[int][]int)
	t.nextID = 0
}

func (t *EntanglementTracker) adopt(id, index int) {
	t.members[id] = append(t.members[id], index)
	sort.Ints(t.members[id])
	t.membership[index] = id
}

func (t *EntanglementTracker) merge(into, from int) {
	for _, m := range t.members[from] {
		t.membership[m] = into
	}
	t.members[into] = append(t.members[into], t.members[from]...)
	sort.Ints(t.members[into])
	delete(t.members, from)
}

func (t *EntanglementTracker) replaceMember(id, from, to int) {
	for k, m := range t.members[id] {
		if m == from {
			t.members[id][k] = to
			break
		}
	}
	sort.Ints(t.members[id])
}

func sorted(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	return []int{a, b}
}
