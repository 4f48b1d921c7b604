package layout

import "testing"

func TestComputeWidth(t *testing.T) {
	tests := []struct {
		name                 string
		pointerX, left, cont int
		want                 int
	}{
		{"inside bounds", 500, 100, 900, 400},
		{"at upper bound", 600, 100, 900, 500},
		{"past upper bound", 850, 100, 900, 500},
		{"below lower bound", 50, 100, 900, 350},
		{"container too narrow", 500, 0, 600, 350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeWidth(tt.pointerX, tt.left, tt.cont); got != tt.want {
				t.Errorf("ComputeWidth(%d, %d, %d) = %d, want %d", tt.pointerX, tt.left, tt.cont, got, tt.want)
			}
		})
	}
}

func TestComputeWidth_AlwaysWithinBounds(t *testing.T) {
	for x := -200; x < 2000; x += 37 {
		w := ComputeWidth(x, 100, 900)
		if w < 350 || w > 500 {
			t.Fatalf("ComputeWidth(%d, 100, 900) = %d, outside [350, 500]", x, w)
		}
	}
}

func TestResizer_DragCycle(t *testing.T) {
	r := NewResizer(CellBounds, 40)
	r.SetContainer(0, 120)

	if r.Move(60) {
		t.Error("Move() while idle changed the width")
	}
	if r.Begin(10) {
		t.Error("Begin() away from the handle started a drag")
	}
	if !r.Begin(41) || !r.Dragging() {
		t.Fatal("Begin() on the handle did not start a drag")
	}
	if !r.Move(55) || r.Width() != 55 {
		t.Errorf("Width() = %d, want 55", r.Width())
	}
	r.Move(200)
	if r.Width() != 80 {
		t.Errorf("Width() = %d, want clamp to 80", r.Width())
	}
	r.End()
	if r.Dragging() {
		t.Error("End() did not return to idle")
	}
	if r.Move(50) || r.Width() != 80 {
		t.Error("Move() after End() changed the width")
	}
}

func TestResizer_SetContainerReclamps(t *testing.T) {
	r := NewResizer(CellBounds, 70)
	r.SetContainer(0, 100)
	if r.Width() != 60 {
		t.Errorf("Width() = %d, want 60", r.Width())
	}
	r.SetContainer(0, 50)
	if r.Width() != 30 {
		t.Errorf("Width() = %d, want minimum 30", r.Width())
	}
}

func TestResizer_Nudge(t *testing.T) {
	r := NewResizer(CellBounds, 40)
	r.SetContainer(0, 120)
	r.Nudge(5)
	if r.Width() != 45 {
		t.Errorf("Width() = %d, want 45", r.Width())
	}
	r.Nudge(-100)
	if r.Width() != 30 {
		t.Errorf("Width() = %d, want 30", r.Width())
	}
}
