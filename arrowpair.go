package main

// ArrowPair is the pair of arrows owned by one line shape. Head sits on the
// first generated point, tail on the last. Size, angle and length are shared:
// the only way to change them writes both ends.
type ArrowPair struct {
	head Arrow
	tail Arrow
}

func NewArrowPair() ArrowPair {
	return ArrowPair{head: NewArrow(), tail: NewArrow()}
}

func (p *ArrowPair) Head() Arrow { return p.head }
func (p *ArrowPair) Tail() Arrow { return p.tail }

func (p *ArrowPair) SetSizeBoth(v float64) {
	p.head.SetSize(v)
	p.tail.size = p.head.size
}

func (p *ArrowPair) SetAngleOffsetBoth(v float64) {
	p.head.SetAngleOffset(v)
	p.tail.angleOffset = p.head.angleOffset
}

func (p *ArrowPair) SetLengthOffsetBoth(v float64) {
	p.head.SetLengthOffset(v)
	p.tail.lengthOffset = p.head.lengthOffset
}

func (p *ArrowPair) SetHeadVisible(v bool) { p.head.SetVisible(v) }
func (p *ArrowPair) SetTailVisible(v bool) { p.tail.SetVisible(v) }

func (p *ArrowPair) AnyVisible() bool {
	return p.head.visible || p.tail.visible
}
