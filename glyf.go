package truetype

// Point is one point of a simple glyph's outline, in font design units.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// Contour is a closed loop of points belonging to a simple glyph.
type Contour []Point

// Component references another glyph, placed and scaled within a composite
// glyph. Exactly one of Scalar, Vector, Matrix is meaningful, selected by
// the flags the component was decoded with; a component with none of
// HaveScale/HaveXAndYScale/HaveTwoByTwo set is unscaled (identity).
type Component struct {
	GlyphIndex GlyphID
	Flags      ComponentFlags
	Arg1, Arg2 int16
	ArgsAreXY  bool
	Scalar     Q16
	Vector     [2]Q16
	Matrix     [4]Q16
}

// Glyph is a decoded glyf entry: either a simple outline (Contours
// non-empty or NumContours == 0) or a composite built from Components,
// distinguished by NumContours < 0.
type Glyph struct {
	NumContours int16
	XMin        int16
	YMin        int16
	XMax        int16
	YMax        int16

	Contours     []Contour
	Instructions []byte

	Components            []Component
	CompositeInstructions []byte
}

// IsComposite reports whether the glyph is built from other glyphs rather
// than carrying its own outline.
func (g *Glyph) IsComposite() bool {
	return g.NumContours < 0
}

// IsEmpty reports whether the glyph has no outline at all (e.g. the space
// glyph, whose loca range has zero length and is never decoded).
func (g *Glyph) IsEmpty() bool {
	return g.NumContours == 0 && len(g.Components) == 0
}

func (g *Glyph) readTapeGiven(t *Tape, l *Lenience) error {
	if err := t.Require("glyf", 10); err != nil {
		return err
	}
	g.NumContours = t.TakeI16()
	g.XMin = t.TakeI16()
	g.YMin = t.TakeI16()
	g.XMax = t.TakeI16()
	g.YMax = t.TakeI16()
	if g.NumContours >= 0 {
		return g.readSimple(t, l)
	}
	return g.readComposite(t, l)
}

func (g *Glyph) readSimple(t *Tape, l *Lenience) error {
	n := int(g.NumContours)
	endPts := make([]uint16, n)
	for i := range endPts {
		endPts[i] = t.TakeU16()
		if i > 0 && endPts[i] < endPts[i-1] {
			return errorf("glyf", "simple glyph end points are not monotonically non-decreasing")
		}
	}
	numPoints := 0
	if n > 0 {
		numPoints = int(endPts[n-1]) + 1
	}
	instructionLength := t.TakeU16()
	g.Instructions = t.TakeBytes(uint32(instructionLength))

	flags := make([]PointFlags, 0, numPoints)
	for len(flags) < numPoints {
		f := PointFlags(t.TakeU8())
		if f.IsInvalid() && !l.ignoreInvalidCompositeGlyphFlags() {
			return errorf("glyf", "simple glyph point flags have the reserved bit set")
		}
		flags = append(flags, f)
		if f.Repeat() {
			repeat := t.TakeU8()
			if len(flags)+int(repeat) > numPoints {
				return errorf("glyf", "simple glyph point flag repeat run exceeds point count")
			}
			for i := uint8(0); i < repeat; i++ {
				flags = append(flags, f)
			}
		}
	}

	xs := make([]int16, numPoints)
	x := int16(0)
	for i, f := range flags {
		var dx int16
		switch {
		case f.XIsByte():
			b := int16(t.TakeU8())
			if !f.XIsSameOrPositive() {
				b = -b
			}
			dx = b
		case f.XIsSameOrPositive():
			dx = 0
		default:
			dx = t.TakeI16()
		}
		x += dx
		xs[i] = x
	}

	ys := make([]int16, numPoints)
	y := int16(0)
	for i, f := range flags {
		var dy int16
		switch {
		case f.YIsByte():
			b := int16(t.TakeU8())
			if !f.YIsSameOrPositive() {
				b = -b
			}
			dy = b
		case f.YIsSameOrPositive():
			dy = 0
		default:
			dy = t.TakeI16()
		}
		y += dy
		ys[i] = y
	}

	contours := make([]Contour, n)
	start := 0
	for i, end := range endPts {
		c := make(Contour, 0, int(end)-start+1)
		for j := start; j <= int(end); j++ {
			c = append(c, Point{X: xs[j], Y: ys[j], OnCurve: flags[j].OnCurve()})
		}
		contours[i] = c
		start = int(end) + 1
	}
	g.Contours = contours
	return nil
}

func (g *Glyph) readComposite(t *Tape, l *Lenience) error {
	var components []Component
	hasInstructions := false
	for {
		if err := t.Require("glyf", 4); err != nil {
			return err
		}
		flags, err := Take[ComponentFlags](t)
		if err != nil {
			return err
		}
		if flags.IsInvalid() && !l.ignoreInvalidComponentFlags() {
			return errorf("glyf", "composite component has reserved flag bits set")
		}
		glyphIndex := t.TakeU16()
		comp := Component{GlyphIndex: GlyphID(glyphIndex), Flags: flags, ArgsAreXY: flags.ArgsAreXY()}
		if flags.ArgsAreWords() {
			comp.Arg1 = t.TakeI16()
			comp.Arg2 = t.TakeI16()
		} else {
			comp.Arg1 = int16(t.TakeI8())
			comp.Arg2 = int16(t.TakeI8())
		}
		switch {
		case flags.HaveScale():
			s, err := Take[Q16](t)
			if err != nil {
				return err
			}
			comp.Scalar = s
		case flags.HaveXAndYScale():
			x, err := Take[Q16](t)
			if err != nil {
				return err
			}
			y, err := Take[Q16](t)
			if err != nil {
				return err
			}
			comp.Vector = [2]Q16{x, y}
		case flags.HaveTwoByTwo():
			var m [4]Q16
			for i := range m {
				v, err := Take[Q16](t)
				if err != nil {
					return err
				}
				m[i] = v
			}
			comp.Matrix = m
		}
		components = append(components, comp)
		hasInstructions = hasInstructions || flags.HaveInstructions()
		if !flags.MoreComponents() {
			if hasInstructions {
				n := t.TakeU16()
				g.CompositeInstructions = t.TakeBytes(uint32(n))
			}
			break
		}
	}
	g.Components = components
	return nil
}

func (g *Glyph) writeTape(w *WTape) error {
	w.GiveI16(g.NumContours)
	w.GiveI16(g.XMin)
	w.GiveI16(g.YMin)
	w.GiveI16(g.XMax)
	w.GiveI16(g.YMax)
	if !g.IsComposite() {
		return g.writeSimple(w)
	}
	return g.writeComposite(w)
}

func (g *Glyph) writeSimple(w *WTape) error {
	end := -1
	for _, c := range g.Contours {
		end += len(c)
		w.GiveU16(uint16(end))
	}
	w.GiveU16(uint16(len(g.Instructions)))
	w.GiveBytes(g.Instructions)

	var flags []PointFlags
	var xs, ys []int16
	for _, c := range g.Contours {
		for _, p := range c {
			f := PointFlags(0)
			if p.OnCurve {
				f |= pointOnCurve
			}
			flags = append(flags, f)
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	for _, f := range flags {
		w.GiveU8(uint8(f))
	}
	prev := int16(0)
	for _, x := range xs {
		w.GiveI16(x - prev)
		prev = x
	}
	prev = 0
	for _, y := range ys {
		w.GiveI16(y - prev)
		prev = y
	}
	return nil
}

func (g *Glyph) writeComposite(w *WTape) error {
	for i, c := range g.Components {
		flags := c.Flags
		if i < len(g.Components)-1 {
			flags |= 1 << 5 // MORE_COMPONENTS
		} else {
			flags &^= 1 << 5
		}
		w.GiveU16(uint16(flags))
		w.GiveU16(uint16(c.GlyphIndex))
		if flags.ArgsAreWords() {
			w.GiveI16(c.Arg1)
			w.GiveI16(c.Arg2)
		} else {
			w.GiveI8(int8(c.Arg1))
			w.GiveI8(int8(c.Arg2))
		}
		switch {
		case flags.HaveScale():
			if err := Give(w, &c.Scalar); err != nil {
				return err
			}
		case flags.HaveXAndYScale():
			if err := Give(w, &c.Vector[0]); err != nil {
				return err
			}
			if err := Give(w, &c.Vector[1]); err != nil {
				return err
			}
		case flags.HaveTwoByTwo():
			for j := range c.Matrix {
				if err := Give(w, &c.Matrix[j]); err != nil {
					return err
				}
			}
		}
	}
	if len(g.CompositeInstructions) > 0 {
		w.GiveU16(uint16(len(g.CompositeInstructions)))
		w.GiveBytes(g.CompositeInstructions)
	}
	return nil
}
