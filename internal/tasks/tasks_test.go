package tasks

import (
	"reflect"
	"testing"
)

func ids(ts []Task) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestAdd_IgnoresEmptyText(t *testing.T) {
	t.Parallel()

	l := NewList()
	if _, ok := l.Add(""); ok {
		t.Fatalf("expected Add(\"\") to be ignored")
	}
	if got := l.Len(); got != 0 {
		t.Fatalf("expected empty list; got %d tasks", got)
	}

	// An empty submit must not consume an id.
	tk, ok := l.Add("Buy milk")
	if !ok || tk.ID != 1 {
		t.Fatalf("expected first real task to get id 1; got %+v ok=%v", tk, ok)
	}
}

func TestAdd_KeepsWhitespaceOnlyText(t *testing.T) {
	t.Parallel()

	l := NewList()
	for _, in := range []string{"   ", "\t\n"} {
		tk, ok := l.Add(in)
		if !ok {
			t.Fatalf("expected Add(%q) to create a task", in)
		}
		if tk.Text != in || tk.Done {
			t.Fatalf("expected text stored as given; got %+v", tk)
		}
	}
	if got, want := ids(l.Tasks()), []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids: got %v want %v", got, want)
	}
}

func TestAdd_FirstTask(t *testing.T) {
	t.Parallel()

	l := NewList()
	if _, ok := l.Add("Buy milk"); !ok {
		t.Fatalf("expected Add to succeed")
	}
	want := []Task{{ID: 1, Text: "Buy milk", Done: false}}
	if got := l.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tasks:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestAdd_NewestFirst(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	l.Add("B")
	want := []Task{{ID: 2, Text: "B"}, {ID: 1, Text: "A"}}
	if got := l.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tasks:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestAdd_KeepsTextAsTyped(t *testing.T) {
	t.Parallel()

	l := NewList()
	tk, _ := l.Add("  padded ")
	if tk.Text != "  padded " {
		t.Fatalf("expected text to be stored verbatim; got %q", tk.Text)
	}
}

func TestToggleDone_MovesToEndThenBackToFront(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	l.Add("B")
	l.Add("C") // [C B A]

	tk, ok := l.ToggleDone(3)
	if !ok || !tk.Done {
		t.Fatalf("expected C to become done; got %+v ok=%v", tk, ok)
	}
	if got, want := ids(l.Tasks()), []int{2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after done: got %v want %v", got, want)
	}

	tk, ok = l.ToggleDone(3)
	if !ok || tk.Done {
		t.Fatalf("expected C to become open; got %+v ok=%v", tk, ok)
	}
	if got, want := ids(l.Tasks()), []int{3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after undone: got %v want %v", got, want)
	}
}

func TestToggleDone_DoneGoesAfterEarlierDone(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	l.Add("B")
	l.Add("C") // [C B A]
	l.ToggleDone(1)
	l.ToggleDone(3)
	if got, want := ids(l.Tasks()), []int{2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// New tasks land in front of everything, still above the done partition.
	l.Add("D")
	if got, want := ids(l.Tasks()), []int{4, 2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	open, done := l.Counts()
	if open != 2 || done != 2 {
		t.Fatalf("expected 2 open / 2 done; got %d / %d", open, done)
	}
}

func TestToggleDone_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	before := l.Tasks()
	if _, ok := l.ToggleDone(42); ok {
		t.Fatalf("expected toggle of unknown id to report false")
	}
	if got := l.Tasks(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected list unchanged; got %#v", got)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     int
		wantOK bool
		want   []int
	}{
		{name: "middle", id: 2, wantOK: true, want: []int{3, 1}},
		{name: "front", id: 3, wantOK: true, want: []int{2, 1}},
		{name: "back", id: 1, wantOK: true, want: []int{3, 2}},
		{name: "missing", id: 9, wantOK: false, want: []int{3, 2, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := NewList()
			l.Add("A")
			l.Add("B")
			l.Add("C")
			if got := l.Delete(tt.id); got != tt.wantOK {
				t.Fatalf("Delete(%d)=%v want %v", tt.id, got, tt.wantOK)
			}
			if got := ids(l.Tasks()); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestDelete_DoneTask(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	l.Add("B")
	l.ToggleDone(1)
	if !l.Delete(1) {
		t.Fatalf("expected delete of done task to succeed")
	}
	if _, ok := l.Get(1); ok {
		t.Fatalf("expected task 1 to be gone")
	}
	if _, done := l.Counts(); done != 0 {
		t.Fatalf("expected empty done partition; got %d", done)
	}
}

func TestCounterIDs_NeverCollideAfterDelete(t *testing.T) {
	t.Parallel()

	l := NewList()
	a, _ := l.Add("A")
	l.Delete(a.ID)
	b, _ := l.Add("B")
	if b.ID == a.ID {
		t.Fatalf("expected a fresh id after delete; both got %d", a.ID)
	}
	if b.ID != 2 {
		t.Fatalf("expected id 2; got %d", b.ID)
	}
}

func TestLengthIDs_ReproduceLegacyNumbering(t *testing.T) {
	t.Parallel()

	l := NewList(WithIDMode(IDModeLength))
	if l.IDMode() != IDModeLength {
		t.Fatalf("expected length mode; got %q", l.IDMode())
	}
	a, _ := l.Add("A")
	l.Delete(a.ID)
	b, _ := l.Add("B")
	if b.ID != a.ID {
		t.Fatalf("expected length numbering to reuse id %d; got %d", a.ID, b.ID)
	}

	// With duplicate ids, operations hit the first match in display order.
	l.Add("C")         // id 2
	l.Delete(b.ID)     // [C(2)]
	d, _ := l.Add("D") // id 2 again
	l.ToggleDone(d.ID) // D is first, so it becomes done
	got := l.Tasks()
	if len(got) != 2 || got[0].Text != "C" || got[1].Text != "D" || !got[1].Done {
		t.Fatalf("unexpected list after duplicate-id toggle: %#v", got)
	}
}

func TestTasks_ReturnsCopy(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("A")
	ts := l.Tasks()
	ts[0].Text = "mutated"
	ts[0].Done = true
	if got, _ := l.Get(1); got.Text != "A" || got.Done {
		t.Fatalf("expected list to be unaffected by caller mutation; got %+v", got)
	}
}

func TestParseIDMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   IDMode
		wantOK bool
	}{
		{in: "", want: IDModeCounter, wantOK: true},
		{in: "counter", want: IDModeCounter, wantOK: true},
		{in: " Length ", want: IDModeLength, wantOK: true},
		{in: "legacy", want: IDModeLength, wantOK: true},
		{in: "uuid", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseIDMode(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ParseIDMode(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
