package views

// biDirectionalView composes the base topology with a transposedView
// so callers get both OutRange/OutEdgeDst (forward) and
// InRange/InEdgeSrc (reverse) off one handle, sharing the same
// transpose-construction cost as a standalone Transposed view.
type biDirectionalView struct {
	base BaseTopology
	rev  *transposedView
}

func newBiDirectionalView(base BaseTopology) (*biDirectionalView, error) {
	rev, err := newTransposedView(base)
	if err != nil {
		return nil, err
	}
	return &biDirectionalView{base: base, rev: rev}, nil
}

func (v *biDirectionalView) Kind() Kind    { return BiDirectional }
func (v *biDirectionalView) NumNodes() int { return v.base.NumNodes() }
func (v *biDirectionalView) NumEdges() int { return v.base.NumEdges() }

func (v *biDirectionalView) OutRange(n NodeID) (start, end EdgeID) { return v.base.OutRange(n) }
func (v *biDirectionalView) OutDegree(n NodeID) int {
	start, end := v.base.OutRange(n)
	return int(end - start)
}
func (v *biDirectionalView) OutEdgeDst(e EdgeID) NodeID { return v.base.OutEdgeDst(e) }

func (v *biDirectionalView) InRange(n NodeID) (start, end EdgeID) { return v.rev.OutRange(n) }
func (v *biDirectionalView) InDegree(n NodeID) int                { return v.rev.OutDegree(n) }
func (v *biDirectionalView) InEdgeSrc(e EdgeID) NodeID            { return v.rev.OutEdgeDst(e) }
