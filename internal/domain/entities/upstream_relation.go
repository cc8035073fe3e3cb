package entities

// UpstreamRelation is the classification of a branch against its configured
// upstream, produced by an upstream comparator.
type UpstreamRelation struct {
	HasUpstream bool
	Ahead       bool
	Behind      bool
	Diverged    bool
}

// Flags maps the relation onto the report flags. A branch with no configured
// upstream reports ahead, behind and diverged all at once.
func (r UpstreamRelation) Flags() (ahead, behind, diverged bool) {
	if !r.HasUpstream {
		return true, true, true
	}
	return r.Ahead, r.Behind, r.Diverged
}
