package internal

import "testing"

func TestStore_AllocRelease(t *testing.T) {
	var s = NewStore[*int](2)
	if s.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", s.Cap())
	}

	var v = 7
	var a = s.Alloc(Nil, &v)
	var b = s.Alloc(a, nil)
	if a == Nil || b == Nil || a == b {
		t.Fatalf("Alloc() handed out %d and %d", a, b)
	}
	if s.Live() != 2 {
		t.Fatalf("Live() = %d, want 2", s.Live())
	}
	if *s.Node(a).Value != 7 || s.Node(b).Link != a {
		t.Fatal("Alloc() did not store the slot")
	}

	s.Release(a)
	if s.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", s.Live())
	}
	if s.Node(a).Value != nil {
		t.Fatal("Release() kept the value reachable")
	}

	if c := s.Alloc(Nil, nil); c != a {
		t.Fatalf("Alloc() = %d, want the released slot %d", c, a)
	}
	if d := s.Alloc(Nil, nil); d == a || d == b {
		t.Fatalf("Alloc() = %d handed out a live slot", d)
	}
}

func TestStore_FreeChain(t *testing.T) {
	var s = NewStore[int](0)
	var refs []Ref
	for i := 0; i < 5; i++ {
		refs = append(refs, s.Alloc(Nil, i))
	}
	for _, r := range refs {
		s.Release(r)
	}

	var seen = map[Ref]bool{}
	for range refs {
		var r = s.Alloc(Nil, 0)
		if seen[r] || !s.Contains(r) {
			t.Fatalf("Alloc() = %d twice", r)
		}
		seen[r] = true
	}
	if len(seen) != len(refs) {
		t.Fatalf("reused %d slots, want %d", len(seen), len(refs))
	}
	if s.Live() != len(refs) {
		t.Fatalf("Live() = %d, want %d", s.Live(), len(refs))
	}
}

func TestStore_Neighbor(t *testing.T) {
	var s = NewStore[string](3)
	var a = s.Alloc(Nil, "a")
	var b = s.Alloc(Nil, "b")
	var c = s.Alloc(Nil, "c")
	s.Node(b).Link = a ^ c

	if got := s.Neighbor(b, a); got != c {
		t.Fatalf("Neighbor(b, a) = %d, want %d", got, c)
	}
	if got := s.Neighbor(b, c); got != a {
		t.Fatalf("Neighbor(b, c) = %d, want %d", got, a)
	}
	if s.Node(b).Link != a^c {
		t.Fatal("Neighbor() changed the link")
	}
}

func TestStore_Contains(t *testing.T) {
	var s = NewStore[int](0)
	var r = s.Alloc(Nil, 1)

	var tests = []struct {
		ref  Ref
		want bool
	}{
		{ref: Nil, want: false},
		{ref: r, want: true},
		{ref: r + 1, want: false},
		{ref: maxRef, want: false},
	}
	for _, test := range tests {
		if got := s.Contains(test.ref); got != test.want {
			t.Fatalf("Contains(%d) = %t, want %t", test.ref, got, test.want)
		}
	}
}
