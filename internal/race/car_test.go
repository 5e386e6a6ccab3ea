package race

import (
	"errors"
	"testing"
)

func TestNewCar_Invalid(t *testing.T) {
	tests := []struct {
		name string
		car  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"six chars", "123456"},
		{"eight chars", "12345678"},
		{"marker only", "-"},
		{"marker inside", "ma-e"},
		{"marker at end", "mak1-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCar(tt.car)
			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("NewCar(%q) error = %v, want ErrInvalidName", tt.car, err)
			}
			var nameErr *NameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("expected *NameError, got %T", err)
			}
			if nameErr.Name != tt.car {
				t.Errorf("NameError.Name = %q, want %q", nameErr.Name, tt.car)
			}
		})
	}
}

func TestNewCar_Valid(t *testing.T) {
	for _, name := range []string{"aaa", "poby", "i  f", "hanul", "가나다라마"} {
		car, err := NewCar(name)
		if err != nil {
			t.Fatalf("NewCar(%q) failed: %v", name, err)
		}
		if car.Name() != name {
			t.Errorf("expected name %q, got %q", name, car.Name())
		}
		if car.Position() != 0 {
			t.Errorf("expected position 0, got %d", car.Position())
		}
	}
}

func TestNewCar_TrimsBeforeValidating(t *testing.T) {
	car, err := NewCar(" abcd ")
	if err != nil {
		t.Fatalf("NewCar(%q) failed: %v", " abcd ", err)
	}
	if car.Name() != "abcd" {
		t.Errorf("expected trimmed name %q, got %q", "abcd", car.Name())
	}

	_, err = NewCar("  abcdef  ")
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected *NameError, got %v", err)
	}
	if nameErr.Name != "  abcdef  " {
		t.Errorf("NameError.Name = %q, want the name as given", nameErr.Name)
	}
}

func TestCarAdvance(t *testing.T) {
	car, _ := NewCar("pobi")

	car.Advance(true)
	if car.Position() != 1 {
		t.Errorf("expected position 1 after move, got %d", car.Position())
	}

	car.Advance(false)
	if car.Position() != 1 {
		t.Errorf("expected position 1 after stay, got %d", car.Position())
	}

	for i := 0; i < 4; i++ {
		car.Advance(true)
	}
	if !car.IsAtPosition(5) {
		t.Errorf("expected position 5, got %d", car.Position())
	}
	if car.IsAtPosition(4) {
		t.Error("IsAtPosition(4) should be false")
	}
}

func TestCarCompare(t *testing.T) {
	a, _ := NewCar("a")
	b, _ := NewCar("b")

	if a.Compare(b) != 0 {
		t.Error("cars at the same position should rank equal")
	}

	a.Advance(true)
	if a.Compare(b) != 1 {
		t.Errorf("Compare = %d, want 1", a.Compare(b))
	}
	if b.Compare(a) != -1 {
		t.Errorf("Compare = %d, want -1", b.Compare(a))
	}
}
