package dag

// PathsToSource returns every path from a source node down to id, each
// listed source first and ending with id. Paths are ordered by the
// insertion order of each node's parents. A source node yields a single
// one-element path. Returns nil if id is not in the graph.
//
// The graph must be acyclic; call [DAG.Validate] first.
func (d *DAG) PathsToSource(id string) [][]string {
	if !d.Has(id) {
		return nil
	}
	memo := make(map[string][][]string)
	var walk func(string) [][]string
	walk = func(n string) [][]string {
		if p, ok := memo[n]; ok {
			return p
		}
		parents := d.incoming[n]
		if len(parents) == 0 {
			memo[n] = [][]string{{n}}
			return memo[n]
		}
		var out [][]string
		for _, p := range parents {
			for _, path := range walk(p) {
				ext := make([]string, len(path)+1)
				copy(ext, path)
				ext[len(path)] = n
				out = append(out, ext)
			}
		}
		memo[n] = out
		return out
	}
	return walk(id)
}
