package almanac

// Pipeline threads keys and ranges through its stages in order.
type Pipeline struct {
	stages []*Table
}

func NewPipeline(stages ...*Table) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Stages() []*Table {
	return p.stages
}

// Resolve maps key through every stage.
func (p *Pipeline) Resolve(key uint64) uint64 {
	for _, stage := range p.stages {
		key = stage.MapKey(key)
	}
	return key
}

// Trace returns key followed by its value after each stage.
func (p *Pipeline) Trace(key uint64) []uint64 {
	lineage := make([]uint64, 0, len(p.stages)+1)
	lineage = append(lineage, key)
	for _, stage := range p.stages {
		key = stage.MapKey(key)
		lineage = append(lineage, key)
	}
	return lineage
}

// ResolveRange maps r through every stage. Each stage is applied to every
// range the previous stage produced.
func (p *Pipeline) ResolveRange(r Range) []Range {
	if r.Length == 0 {
		return nil
	}

	current := []Range{r}
	for _, stage := range p.stages {
		next := make([]Range, 0, len(current))
		for _, c := range current {
			next = append(next, stage.MapRange(c)...)
		}
		current = next
	}
	return current
}

// MinimumDestination returns the smallest start among ranges.
func MinimumDestination(ranges []Range) (uint64, error) {
	if len(ranges) == 0 {
		return 0, ErrEmptyReduction
	}

	lowest := ranges[0].Start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}
