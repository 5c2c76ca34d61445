// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"math/bits"

	"golang.org/x/exp/slices"

	"latticeui.org/f32"
)

// Flex lays out children along an axis, sharing the space left by
// the non-filling children among the filling ones according to their
// fill factors.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Padding surrounds the children.
	Padding Padding
	// Spacing is the space between consecutive children.
	Spacing float32
	// Align is the alignment of the children on the cross axis.
	Align Alignment
}

// Child is the descriptor of something Flex can lay out with a
// renderer of type R.
type Child[R any] interface {
	Width() Length
	Height() Length
	Layout(r R, l Limits) Node
}

// Resolve lays out children inside limits. The returned size is
// always within limits. Non-filling children are
// laid out first, in order, each bounded by the main axis space still
// available. The remaining space is then split among the filling
// children by weight, see Shares.
func Resolve[R any, C Child[R]](f Flex, r R, limits Limits, children []C) Node {
	axis := f.Axis
	outer := limits
	limits = limits.Pad(f.Padding)
	stretch := f.Align == Stretch
	totalSpacing := f.Spacing * float32(max(len(children)-1, 0))
	maxCross := axis.Cross(limits.Max())
	minCross := axis.Cross(limits.Min())
	cross := max(minCross, axis.Cross(limits.Fill()))
	available := axis.Main(limits.Max()) - totalSpacing

	if stretch {
		// Find the cross length the children are stretched to.
		fillCross := minCross
		for _, c := range children {
			_, crossLen := axis.Lengths(c.Width(), c.Height())
			if crossLen.IsFill() {
				continue
			}
			n := c.Layout(r, NewLimits(f32.Size{}, axis.Size(max(available, 0), maxCross)))
			fillCross = max(fillCross, axis.Cross(n.Size()))
		}
		cross = fillCross
	}

	nodes := make([]Node, len(children))
	var (
		flexed  []int
		weights []uint16
	)
	for i, c := range children {
		mainLen, _ := axis.Lengths(c.Width(), c.Height())
		if w := mainLen.FillFactor(); w != 0 {
			flexed = append(flexed, i)
			weights = append(weights, w)
			continue
		}
		lo, hi := axis.Size(0, 0), axis.Size(max(available, 0), maxCross)
		if stretch {
			lo, hi = axis.Size(0, cross), axis.Size(max(available, 0), cross)
		}
		n := c.Layout(r, NewLimits(lo, hi))
		available -= axis.Main(n.Size())
		if !stretch {
			cross = max(cross, axis.Cross(n.Size()))
		}
		nodes[i] = n
	}

	shares := Shares(max(available, 0), weights)
	for k, i := range flexed {
		share := shares[k]
		minMain := share
		if math.IsInf(float64(share), 1) {
			minMain = 0
		}
		lo, hi := axis.Size(minMain, minCross), axis.Size(share, maxCross)
		if stretch {
			lo, hi = axis.Size(minMain, cross), axis.Size(share, cross)
		}
		n := children[i].Layout(r, NewLimits(lo, hi))
		if !stretch {
			cross = max(cross, axis.Cross(n.Size()))
		}
		nodes[i] = n
	}

	padMain, padCross := axis.Pack(float32(f.Padding.Left), float32(f.Padding.Top))
	main := padMain
	for i := range nodes {
		if i > 0 {
			main += f.Spacing
		}
		x, y := axis.Pack(main, padCross)
		nodes[i].MoveTo(f32.Pt(x, y))
		if axis == Horizontal {
			nodes[i].Align(Start, f.Align, f32.Sz(0, cross))
		} else {
			nodes[i].Align(f.Align, Start, f32.Sz(cross, 0))
		}
		main += axis.Main(nodes[i].Size())
	}
	sz := limits.Resolve(axis.Size(main-padMain, cross))
	// Padding larger than the limits cannot be honored in full.
	return WithChildren(outer.Clamp(PadSize(sz, f.Padding)), nodes)
}

// maxExact is the length above which Shares splits proportionally
// without rounding to whole units.
const maxExact = 1 << 53

// Shares splits remaining among weights. Whole units are distributed
// with the largest remainder method: every weight first receives the
// floor of its exact share, then the units left over go one each to
// the weights with the largest remainders, earlier weights first on
// ties. A fractional part of remaining is added to the last share.
// An unbounded remaining gives every weight an unbounded share.
func Shares(remaining float32, weights []uint16) []float32 {
	shares := make([]float32, len(weights))
	if len(weights) == 0 {
		return shares
	}
	if math.IsInf(float64(remaining), 1) {
		for i := range shares {
			shares[i] = remaining
		}
		return shares
	}
	var total uint64
	for _, w := range weights {
		total += uint64(w)
	}
	if total == 0 || remaining <= 0 {
		return shares
	}
	if remaining >= maxExact {
		// Beyond exact integers whole units are meaningless.
		for i, w := range weights {
			shares[i] = float32(float64(remaining) * float64(w) / float64(total))
		}
		return shares
	}
	whole := math.Floor(float64(remaining))
	units := uint64(whole)
	type rem struct {
		idx int
		r   uint64
	}
	rems := make([]rem, len(weights))
	var given uint64
	for i, w := range weights {
		// units*w/total <= units, so the quotient fits in 64 bits.
		hi, lo := bits.Mul64(units, uint64(w))
		q, r := bits.Div64(hi, lo, total)
		shares[i] = float32(q)
		given += q
		rems[i] = rem{idx: i, r: r}
	}
	slices.SortStableFunc(rems, func(a, b rem) int {
		switch {
		case a.r > b.r:
			return -1
		case a.r < b.r:
			return 1
		}
		return 0
	})
	for k := uint64(0); k < units-given; k++ {
		shares[rems[k].idx]++
	}
	shares[len(shares)-1] += float32(float64(remaining) - whole)
	return shares
}
