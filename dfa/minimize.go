package dfa

import "github.com/coregx/regexsynth/internal/sparse"

// Minimize returns the minimal DFA equivalent to d, computed by Hopcroft's
// partition-refinement algorithm: states are split into accepting and
// non-accepting blocks, then repeatedly refined against the preimage of
// each block under each alphabet symbol until no block splits further.
//
// Partition blocks and the preimages used to refine them are represented
// as sparse.SparseSet rather than Go maps, for the same O(1)
// membership/iteration tradeoff the sparse set was built for in NFA state
// tracking.
func Minimize(d *DFA) *DFA {
	n := len(d.States)
	if n == 0 {
		return d
	}
	alphabet := d.AlphabetKeys()

	acc := sparse.NewSparseSet(uint32(n))
	non := sparse.NewSparseSet(uint32(n))
	for _, s := range d.States {
		if s.Accept {
			acc.Insert(uint32(s.ID))
		} else {
			non.Insert(uint32(s.ID))
		}
	}

	var partitions []*sparse.SparseSet
	if !acc.IsEmpty() {
		partitions = append(partitions, acc)
	}
	if !non.IsEmpty() {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	for i := range work {
		work[i] = i
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		a := partitions[idx]

		for _, c := range alphabet {
			x := sparse.NewSparseSet(uint32(n))
			for _, s := range d.States {
				if to, ok := s.Trans[c]; ok && a.Contains(uint32(to)) {
					x.Insert(uint32(s.ID))
				}
			}
			if x.IsEmpty() {
				continue
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				y := partitions[pIdx]
				inter := sparse.NewSparseSet(uint32(n))
				diff := sparse.NewSparseSet(uint32(n))
				for _, v := range y.Values() {
					if x.Contains(v) {
						inter.Insert(v)
					} else {
						diff.Insert(v)
					}
				}
				if inter.IsEmpty() || diff.IsEmpty() {
					continue
				}

				partitions[pIdx] = inter
				partitions = append(partitions, diff)

				// Hopcroft's rule: enqueue the smaller half, or the new half
				// as well when the split block is still pending in work.
				pending := false
				for _, w := range work {
					pending = pending || w == pIdx
				}
				if !pending && inter.Size() < diff.Size() {
					work = append(work, pIdx)
				} else {
					work = append(work, len(partitions)-1)
				}
			}
		}
	}

	return rebuild(d, partitions)
}

// rebuild constructs the quotient DFA from a stable partition: one new
// state per block, transitions carried over from an arbitrary
// representative of each block (correct because the partition is stable —
// every state in a block agrees on where each symbol leads, up to which
// block it lands in).
func rebuild(d *DFA, partitions []*sparse.SparseSet) *DFA {
	rep := make([]StateID, len(d.States))
	newStates := make([]*State, 0, len(partitions))

	for _, p := range partitions {
		vals := p.Values()
		if len(vals) == 0 {
			continue
		}
		first := vals[0]
		newID := StateID(len(newStates))
		newStates = append(newStates, &State{
			ID:     newID,
			Accept: d.States[first].Accept,
			Trans:  make(map[string]StateID),
		})
		for _, v := range vals {
			rep[v] = newID
		}
	}

	for _, p := range partitions {
		vals := p.Values()
		if len(vals) == 0 {
			continue
		}
		old := d.States[vals[0]]
		newID := rep[vals[0]]
		for c, to := range old.Trans {
			newStates[newID].Trans[c] = rep[to]
		}
	}

	return &DFA{
		States:   newStates,
		Start:    rep[d.Start],
		Alphabet: d.Alphabet,
	}
}
