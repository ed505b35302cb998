package almanac

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int64
}

// Empty reports whether the interval holds no numbers.
func (iv Interval) Empty() bool { return iv.Start >= iv.End }

// ApplyRange translates every number of in. Pieces covered by an entry
// are shifted; the rest pass through unchanged. Entries are tried in
// order so a number covered twice takes the first entry, as in Apply.
func (m Map) ApplyRange(in Interval) []Interval {
	pending := []Interval{in}
	var out []Interval
	for _, e := range m.Entries {
		var next []Interval
		for _, p := range pending {
			lo, hi := max(p.Start, e.Src), min(p.End, e.Src+e.Len)
			if lo >= hi {
				next = append(next, p)
				continue
			}
			shift := e.Dst - e.Src
			out = append(out, Interval{lo + shift, hi + shift})
			if p.Start < lo {
				next = append(next, Interval{p.Start, lo})
			}
			if hi < p.End {
				next = append(next, Interval{hi, p.End})
			}
		}
		pending = next
		if len(pending) == 0 {
			break
		}
	}
	return append(out, pending...)
}

// ApplyRange runs in through every map of the chain.
func (a *Almanac) ApplyRange(in Interval) []Interval {
	cur := []Interval{in}
	for _, m := range a.Maps {
		var next []Interval
		for _, iv := range cur {
			if iv.Empty() {
				continue
			}
			next = append(next, m.ApplyRange(iv)...)
		}
		cur = next
	}
	return cur
}

// lowest returns the smallest number in any non-empty interval.
func lowest(ivs []Interval) (int64, bool) {
	var best int64
	found := false
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < best {
			best, found = iv.Start, true
		}
	}
	return best, found
}
