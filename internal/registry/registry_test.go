package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Preset{ID: "test_lookup", Title: "Lookup", Width: 7, Height: 3})

	p, err := Lookup("test_lookup")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if p.Width != 7 || p.Height != 3 || p.Title != "Lookup" {
		t.Errorf("Lookup() = %+v, expected 7x3 'Lookup'", p)
	}
	if !Exists("test_lookup") {
		t.Error("Exists() should report registered preset")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no_such_board")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Lookup() error = %v, expected ErrUnknownPreset", err)
	}
	if Exists("no_such_board") {
		t.Error("Exists() should be false for unknown preset")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Preset{ID: "test_dup", Width: 2, Height: 2})

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate ID")
		}
	}()
	Register(Preset{ID: "test_dup", Width: 3, Height: 3})
}

func TestRegisterInvalidBoardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on empty board")
		}
	}()
	Register(Preset{ID: "test_empty", Width: 0, Height: 5})
}

func TestListSortedByArea(t *testing.T) {
	Register(Preset{ID: "test_big", Width: 100, Height: 100})
	Register(Preset{ID: "test_tiny", Width: 1, Height: 1})

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d presets, expected at least 2", len(list))
	}
	if list[0].ID != "test_tiny" {
		t.Errorf("List()[0] = %q, expected smallest board first", list[0].ID)
	}
	if list[len(list)-1].ID != "test_big" {
		t.Errorf("List() last = %q, expected largest board last", list[len(list)-1].ID)
	}
	for i := 1; i < len(list); i++ {
		prev := list[i-1].Width * list[i-1].Height
		cur := list[i].Width * list[i].Height
		if prev > cur {
			t.Errorf("List() not sorted by area at %d: %d > %d", i, prev, cur)
		}
	}
}
