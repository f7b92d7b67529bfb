package game

// Score sums value × length over every section whose fields are all filled
// with tiles agreeing on the section's orientation.
func (b *Board) Score() int {
	score := 0
	for i, s := range sections {
		score += b.sectionScore(s.Orientation, sectionIndices[i])
	}
	return score
}

// MaxScore is an upper bound on the final score reachable from b. Each section
// counts as if its empty fields were filled favorably: with the value already
// shown by its placed tiles, or with the orientation's maximum if it is empty.
// Sections whose placed tiles already disagree count nothing.
func (b *Board) MaxScore() int {
	score := 0
	for i, s := range sections {
		score += b.sectionMaxScore(s.Orientation, sectionIndices[i])
	}
	return score
}

func (b *Board) sectionScore(o Orientation, indices []int) int {
	value := 0
	for _, i := range indices {
		t := b.cells[i]
		if t.IsZero() {
			return 0
		}
		edge := t.Edge(o)
		if value != 0 && edge != value {
			return 0
		}
		value = edge
	}
	return value * len(indices)
}

func (b *Board) sectionMaxScore(o Orientation, indices []int) int {
	value := 0
	for _, i := range indices {
		t := b.cells[i]
		if t.IsZero() {
			continue
		}
		edge := t.Edge(o)
		if value != 0 && edge != value {
			return 0
		}
		value = edge
	}
	if value == 0 {
		value = o.MaxValue()
	}
	return value * len(indices)
}
