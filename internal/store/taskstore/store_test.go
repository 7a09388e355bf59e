package taskstore

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/tasklist/internal/model"
)

type fakeInput struct {
	value  string
	resets int
}

func (f *fakeInput) Value() string { return f.value }
func (f *fakeInput) Reset()         { f.value = ""; f.resets++ }

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Buy milk", "Buy milk"},
		{"surrounding spaces", "  Buy milk  ", "Buy milk"},
		{"tabs and newline", "\tcall mom\n", "call mom"},
		{"inner spaces kept", "a  b", "a  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := s.Len()
			task, err := s.Add(tt.raw)
			if err != nil {
				t.Fatalf("Add(%q) failed: %v", tt.raw, err)
			}
			if s.Len() != before+1 {
				t.Fatalf("Len: got %d, want %d", s.Len(), before+1)
			}
			last := s.Tasks()[s.Len()-1]
			if last != task {
				t.Errorf("last task: got %+v, want %+v", last, task)
			}
			if last.Text != tt.want {
				t.Errorf("Text: got %q, want %q", last.Text, tt.want)
			}
			if last.Completed {
				t.Error("new task should not be completed")
			}
		})
	}
}

func TestAddRejectsBlank(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		s := New()
		if _, err := s.Add("keep"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		before := s.Tasks()

		_, err := s.Add(raw)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Add(%q): got %v, want *ValidationError", raw, err)
		}
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q): error should match ErrEmptyText", raw)
		}
		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Errorf("Add(%q) changed the list: %+v", raw, s.Tasks())
		}
	}
}

func TestAddFrom(t *testing.T) {
	s := New()

	in := &fakeInput{value: "  water plants "}
	task, err := s.AddFrom(in)
	if err != nil {
		t.Fatalf("AddFrom failed: %v", err)
	}
	if task.Text != "water plants" {
		t.Errorf("Text: got %q", task.Text)
	}
	if in.value != "" || in.resets != 1 {
		t.Errorf("input should be cleared once, got value=%q resets=%d", in.value, in.resets)
	}

	blank := &fakeInput{value: "   "}
	if _, err := s.AddFrom(blank); err == nil {
		t.Fatal("expected validation error")
	}
	if blank.resets != 0 || blank.value != "   " {
		t.Errorf("blank input should be left alone, got value=%q resets=%d", blank.value, blank.resets)
	}
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	s := New()
	var prev int64
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		task, err := s.Add("task")
		if err != nil {
			t.Fatal(err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		if task.ID <= prev {
			t.Fatalf("id %d not greater than %d", task.ID, prev)
		}
		seen[task.ID] = true
		prev = task.ID
	}
}

type fixedIDs struct{ next int64 }

func (f *fixedIDs) Next() int64 { f.next += 10; return f.next }

func TestWithIDSource(t *testing.T) {
	s := New(WithIDSource(&fixedIDs{}))
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	if a.ID != 10 || b.ID != 20 {
		t.Errorf("ids: got %d, %d, want 10, 20", a.ID, b.ID)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s := New()
	a, _ := s.Add("A")
	b, _ := s.Add("B")
	c, _ := s.Add("C")
	before := s.Tasks()

	if !s.Toggle(b.ID) {
		t.Fatal("Toggle should report a match")
	}
	got := s.Tasks()
	if !got[1].Completed {
		t.Error("B should be completed after one toggle")
	}
	if got[0] != a || got[2] != c {
		t.Errorf("other tasks changed: %+v", got)
	}
	if got[1].ID != b.ID || got[1].Text != b.Text {
		t.Errorf("toggled task lost identity: %+v", got[1])
	}

	s.Toggle(b.ID)
	if !reflect.DeepEqual(s.Tasks(), before) {
		t.Errorf("two toggles: got %+v, want %+v", s.Tasks(), before)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := New()
	a, _ := s.Add("A")
	b, _ := s.Add("B")

	if !s.Delete(a.ID) {
		t.Fatal("first Delete should report a match")
	}
	after := s.Tasks()
	if s.Delete(a.ID) {
		t.Error("second Delete should be a no-op")
	}
	if !reflect.DeepEqual(s.Tasks(), after) {
		t.Errorf("second Delete changed the list: %+v", s.Tasks())
	}
	if want := []model.Task{b}; !reflect.DeepEqual(after, want) {
		t.Errorf("list: got %+v, want %+v", after, want)
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Add("A")
	s.Add("B")
	before := s.Tasks()

	if s.Toggle(999) {
		t.Error("Toggle(999) reported a match")
	}
	if s.Delete(999) {
		t.Error("Delete(999) reported a match")
	}
	if !reflect.DeepEqual(s.Tasks(), before) {
		t.Errorf("list changed: %+v", s.Tasks())
	}
}

func TestInsertionOrder(t *testing.T) {
	s := New()
	a, _ := s.Add("A")
	s.Add("B")
	s.Delete(a.ID)

	got := s.Tasks()
	if len(got) != 1 || got[0].Text != "B" {
		t.Errorf("got %+v, want [B]", got)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := New()
	s.Add("A")
	got := s.Tasks()
	got[0].Text = "mutated"
	if s.Tasks()[0].Text != "A" {
		t.Error("Tasks should not expose internal storage")
	}
}

func TestSubscribe(t *testing.T) {
	s := New()
	var calls int
	var last []model.Task
	unsubscribe := s.Subscribe(func(tasks []model.Task) {
		calls++
		last = tasks
	})

	a, _ := s.Add("A")
	if calls != 1 || len(last) != 1 {
		t.Fatalf("after add: calls=%d last=%+v", calls, last)
	}

	s.Add("  ")
	if calls != 1 {
		t.Errorf("rejected add should not notify, calls=%d", calls)
	}

	s.Toggle(a.ID)
	s.Toggle(404)
	s.Delete(a.ID)
	if calls != 4 {
		t.Errorf("calls: got %d, want 4", calls)
	}
	if len(last) != 0 {
		t.Errorf("last snapshot: got %+v, want empty", last)
	}

	unsubscribe()
	s.Add("B")
	if calls != 4 {
		t.Errorf("unsubscribed callback still called, calls=%d", calls)
	}
}
