package collide

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	tests := []struct {
		pt   Vec2
		want bool
	}{
		{Vec(0, 0), true},
		{Vec(5, 5), true},
		{Vec(9.99, 9.99), true},
		{Vec(10, 5), false},
		{Vec(5, 10), false},
		{Vec(-0.1, 0), false},
		{Vec(0, -0.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%s.Contains(%s) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectContainsRect(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{0, 0, 10, 10}, true},
		{Rect{1, 1, 9, 9}, true},
		{Rect{1, 1, 10, 1}, false},
		{Rect{-1, 1, 2, 2}, false},
		{Rect{20, 20, 1, 1}, false},
	}
	for _, tt := range tests {
		if got := r.ContainsRect(tt.o); got != tt.want {
			t.Errorf("%s.ContainsRect(%s) = %t, want %t", r, tt.o, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	tests := []struct {
		o    Rect
		want bool
	}{
		// Sharing an edge
		{Rect{10, 0, 5, 5}, false},
		{Rect{0, 10, 5, 5}, false},
		{Rect{-5, -5, 5, 5}, false},
		{Rect{9, 9, 5, 5}, true},
		{Rect{2, 2, 1, 1}, true},
		{Rect{-5, -5, 20, 20}, true},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.o); got != tt.want {
			t.Errorf("%s.Intersects(%s) = %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Intersects(r); got != tt.want {
			t.Errorf("%s.Intersects(%s) = %t, want %t", tt.o, r, got, tt.want)
		}
	}
}

func TestRectRegion(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	tests := []struct {
		pt   Vec2
		want int
	}{
		{Vec(-1, -1), 0},
		{Vec(5, -1), 1},
		{Vec(11, -1), 2},
		{Vec(-1, 5), 3},
		{Vec(5, 5), 4},
		{Vec(11, 5), 5},
		{Vec(-1, 11), 6},
		{Vec(5, 11), 7},
		{Vec(11, 11), 8},

		// On the boundary
		{Vec(0, 0), 4},
		{Vec(10, 10), 4},
		{Vec(10, -1), 1},
	}
	for _, tt := range tests {
		if got := r.Region(tt.pt); got != tt.want {
			t.Errorf("%s.Region(%s) = %d, want %d", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectClosestPointOnEdge(t *testing.T) {
	r := Rect{1, 1, 4, 4}

	tests := []struct {
		pt   Vec2
		want Vec2
	}{
		{Vec(6, 3), Vec(5, 3)},
		{Vec(5, 3), Vec(5, 3)},
		{Vec(4, 3), Vec(5, 3)},
		{Vec(6, 0), Vec(5, 1)},
		{Vec(0, 0), Vec(1, 1)},
		{Vec(3, 1.5), Vec(3, 1)},
		{Vec(3, 10), Vec(3, 5)},
	}
	for _, tt := range tests {
		diff(t, tt.want, r.ClosestPointOnEdge(tt.pt))
	}
}

func TestRectShortestOverlap(t *testing.T) {
	r := Rect{0, 0, 2, 2}

	tests := []struct {
		o    Rect
		want Vec2
	}{
		{Rect{1, 0, 2, 2}, Vec(1, 0)},
		{Rect{0, 1.5, 2, 2}, Vec(0, 0.5)},
		{Rect{-1.5, 0, 2, 2}, Vec(-0.5, 0)},
		{Rect{0, -1.5, 2, 2}, Vec(0, -0.5)},
		{Rect{5, 5, 1, 1}, Vec(0, 0)},
		{Rect{2, 0, 2, 2}, Vec(0, 0)},
	}
	for _, tt := range tests {
		diff(t, tt.want, r.ShortestOverlap(tt.o))
	}
}

func TestRectUnionIntersection(t *testing.T) {
	diff(t, Rect{0, 0, 6, 6}, Rect{0, 0, 2, 2}.Union(Rect{5, 5, 1, 1}))
	diff(t, Rect{-1, 0, 3, 2}, Rect{0, 0, 2, 2}.Union(Rect{-1, 1, 1, 1}))

	diff(t, Rect{2, 2, 2, 2}, Rect{0, 0, 4, 4}.Intersection(Rect{2, 2, 4, 4}))
	diff(t, Rect{}, Rect{0, 0, 4, 4}.Intersection(Rect{5, 5, 4, 4}))
	diff(t, Rect{}, Rect{0, 0, 4, 4}.Intersection(Rect{4, 0, 4, 4}))
}

func TestRectMisc(t *testing.T) {
	diff(t, Rect{1, 1, 2, 3}, NewRectSpanning(Vec(3, 4), Vec(1, 1)))
	diff(t, Rect{-1, -1, 4, 4}, Rect{0, 0, 2, 2}.Inflate(1))
	diff(t, Rect{-1, 0, 4, 2}, Rect{0, 0, 2, 2}.InflateVec(Vec(1, 0)))
	diff(t, Rect{4, 4, 2, 2}, Rect{0, 0, 2, 2}.WithCenter(Vec(5, 5)))
	diff(t, Rect{7, 8, 2, 2}, Rect{0, 0, 2, 2}.AtPosition(Vec(7, 8)))
	diff(t, Rect{1, 2, 2, 2}, Rect{0, 0, 2, 2}.Translate(Vec(1, 2)))
	diff(t, Vec(2, 3), Rect{1, 1, 2, 4}.Center())

	if !(Rect{}).IsEmpty() {
		t.Error("zero rect is not empty")
	}
	if (Rect{0, 0, 0, 1}).IsEmpty() {
		t.Error("non-zero rect is empty")
	}
	if !(Rect{0, 0, math.Inf(1), 1}).IsInf() {
		t.Error("expected infinite rect")
	}
	if !(Rect{math.NaN(), 0, 1, 1}).IsNaN() {
		t.Error("expected NaN rect")
	}
	if !(Rect{0, 0, 1, 1}).ApproxEqual(Rect{1e-6, 0, 1, 1 - 1e-6}, Epsilon) {
		t.Error("expected rects to be approximately equal")
	}
	if s := (Rect{1, 2, 3, 4}).String(); s != "{X=1, Y=2, W=3, H=4}" {
		t.Errorf("got %q", s)
	}

	want := [4]Line{
		Ln(1, 2, 4, 2),
		Ln(4, 2, 4, 6),
		Ln(1, 6, 4, 6),
		Ln(1, 2, 1, 6),
	}
	diff(t, want, Rect{1, 2, 3, 4}.Edges())
}

func TestRectSweepMoveLine(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		newPos Vec2
		l      Line
		want   Sweep
	}{
		{
			name:   "not moving",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(1, 1),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(1, 1), Complete: true},
		},
		{
			name:   "moving away",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(0, 0),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(0, 0), Complete: true},
		},
		{
			name:   "passing above",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(2, 0),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(2, 0), Complete: true},
		},
		{
			name:   "passing below",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(2, 3),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(2, 3), Complete: true},
		},
		{
			name:   "hitting line end",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(3, 1),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(2, 1), Normal: Vec(-1, 0), Point: Vec(4, 3)},
		},
		{
			name:   "overshooting",
			r:      Rect{1, 1, 3, 3},
			newPos: Vec(20, 1),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(2, 1), Normal: Vec(-1, 0), Point: Vec(4, 3)},
		},
		{
			name:   "from the right",
			r:      Rect{9, 1, 3, 3},
			newPos: Vec(3, 1),
			l:      Ln(5, 3, 8, 3),
			want:   Sweep{Position: Vec(8, 1), Normal: Vec(1, 0), Point: Vec(9, 3)},
		},
		{
			name:   "from below",
			r:      Rect{-1, 2, 2, 2},
			newPos: Vec(-1, 0),
			l:      Ln(0, 0, 0, 1),
			want:   Sweep{Position: Vec(-1, 1), Normal: Vec(0, 1), Point: Vec(0, 2)},
		},
		{
			name:   "from above",
			r:      Rect{-1, -3, 2, 2},
			newPos: Vec(-1, 0),
			l:      Ln(0, 0, 0, 1),
			want:   Sweep{Position: Vec(-1, -2), Normal: Vec(0, -1), Point: Vec(0, -1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.r.SweepMoveLine(tt.newPos, tt.l), approx)
		})
	}
}

func TestRectSweepMoveLineCorner(t *testing.T) {
	// A corner of the rectangle runs into a diagonal line.
	l := Ln(2, 4, 4, 2)

	got := Rect{1, 2, 1, 1}.SweepMoveLine(Vec(4, 2), l)
	diff(t, Vec(2, 2), got.Position, approx)
	diff(t, Vec(-1, -1).Normalize(), got.Normal, approx)
	if got.Complete {
		t.Error("expected collision")
	}

	got = Rect{4, 3, 1, 1}.SweepMoveLine(Vec(0, 3), l)
	diff(t, Vec(3, 3), got.Position, approx)
	diff(t, Vec(1, 1).Normalize(), got.Normal, approx)
	if got.Complete {
		t.Error("expected collision")
	}
}

func TestRectSweepMoveLineOverlapping(t *testing.T) {
	r := Rect{0, 0, 2, 2}
	for _, l := range []Line{Ln(1, 1, 3, 1), Ln(-1, 1, 3, 1)} {
		diff(t, Sweep{Position: Vec(0, 0)}, r.SweepMoveLine(Vec(3, 3), l))
	}
}

func TestRectSweepMoveRect(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		newPos Vec2
		o      Rect
		want   Sweep
	}{
		{
			name:   "right",
			r:      Rect{0, 0, 2, 2},
			newPos: Vec(10, 0),
			o:      Rect{5, 0, 2, 2},
			want:   Sweep{Position: Vec(3, 0), Normal: Vec(-1, 0)},
		},
		{
			name:   "left",
			r:      Rect{10, 0, 2, 2},
			newPos: Vec(0, 0),
			o:      Rect{5, 0, 2, 2},
			want:   Sweep{Position: Vec(7, 0), Normal: Vec(1, 0)},
		},
		{
			name:   "never touching",
			r:      Rect{0, 0, 2, 2},
			newPos: Vec(0, 10),
			o:      Rect{5, 0, 2, 2},
			want:   Sweep{Position: Vec(0, 10), Complete: true},
		},
		{
			name:   "overlapping",
			r:      Rect{0, 0, 2, 2},
			newPos: Vec(5, 5),
			o:      Rect{1, 1, 2, 2},
			want:   Sweep{Position: Vec(0, 0)},
		},
		{
			name:   "corner to corner",
			r:      Rect{0, 0, 1, 1},
			newPos: Vec(4, 4),
			o:      Rect{2, 2, 1, 1},
			want:   Sweep{Position: Vec(1, 1), Normal: Vec(-1, -1).Normalize()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.r.SweepMoveRect(tt.newPos, tt.o), approx)
		})
	}

	mustPanic(t, "negative width", func() {
		Rect{0, 0, -1, 1}.SweepMoveRect(Vec(1, 1), Rect{5, 5, 1, 1})
	})
}

func TestRectRandomPointInside(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	r := Rect{-2, 3, 5, 1}
	for range 1000 {
		if pt := r.RandomPointInside(rng); !r.Contains(pt) {
			t.Fatalf("%s.RandomPointInside() = %s, outside of rect", r, pt)
		}
	}
}
