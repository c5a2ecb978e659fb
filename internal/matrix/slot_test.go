package matrix_test

import (
	"errors"
	"testing"
	"time"

	"sppd-activity/internal/matrix"
)

func TestPlan(t *testing.T) {
	loc := jakarta(t)
	l := matrix.DefaultLayout(loc)
	date := time.Date(2024, 8, 5, 9, 0, 0, 0, loc)
	header := []any{45506.0, 45507.0, 45508.0, 45509.0, 45510.0}

	t.Run("end to end H20", func(t *testing.T) {
		var readCol int
		slot, err := matrix.Plan(l, "Giat_Agustus_24", header, func(col int) ([]any, error) {
			readCol = col
			return []any{"Apel Pagi|Halaman|07:30|", "Rapat|Aula|09:00|Camat"}, nil
		}, date)
		if err != nil {
			t.Fatalf("Plan() error = %v", err)
		}
		if readCol != 8 || slot.Column != 8 {
			t.Errorf("column = %d (read %d), want 8", slot.Column, readCol)
		}
		if slot.Row != 20 || slot.Cell != "H20" {
			t.Errorf("slot = %s row %d, want H20", slot.Cell, slot.Row)
		}
		if slot.Range(l) != "'Giat_Agustus_24'!H20" {
			t.Errorf("Range() = %q", slot.Range(l))
		}
		if err := slot.Validate(l); err != nil {
			t.Errorf("planned slot should validate: %v", err)
		}
	})

	t.Run("date column not found", func(t *testing.T) {
		_, err := matrix.Plan(l, "Giat_Agustus_24", header[:2], func(int) ([]any, error) {
			t.Fatal("column must not be read")
			return nil, nil
		}, date)
		var slotErr *matrix.SlotError
		if !errors.As(err, &slotErr) || !errors.Is(err, matrix.ErrDateColumnNotFound) {
			t.Fatalf("expected SlotError(ErrDateColumnNotFound), got %v", err)
		}
		if slotErr.Sheet != "Giat_Agustus_24" {
			t.Errorf("SlotError.Sheet = %q", slotErr.Sheet)
		}
	})

	t.Run("column full", func(t *testing.T) {
		_, err := matrix.Plan(l, "Giat_Agustus_24", header, func(int) ([]any, error) {
			return filled(l.Window(), l.Window()), nil
		}, date)
		if !errors.Is(err, matrix.ErrColumnFull) {
			t.Fatalf("expected ErrColumnFull, got %v", err)
		}
		if errors.Is(err, matrix.ErrDateColumnNotFound) {
			t.Errorf("column full must be distinct from not found")
		}
	})

	t.Run("column read error is returned as is", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		_, err := matrix.Plan(l, "Giat_Agustus_24", header, func(int) ([]any, error) { return nil, boom }, date)
		if !errors.Is(err, boom) {
			t.Errorf("expected read error, got %v", err)
		}
	})
}

func TestReservedSlotValidate(t *testing.T) {
	l := matrix.DefaultLayout(time.UTC)
	valid := matrix.ReservedSlot{Token: "5f0c6c0e-7a43-4c55-9d3e-0d7c4bb6a111", Sheet: "Giat_Agustus_24", Column: 8, Row: 20}

	if err := valid.Validate(l); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	cases := map[string]func(*matrix.ReservedSlot){
		"no token":         func(s *matrix.ReservedSlot) { s.Token = "" },
		"bad token":        func(s *matrix.ReservedSlot) { s.Token = "abc" },
		"no sheet":         func(s *matrix.ReservedSlot) { s.Sheet = "" },
		"header row":       func(s *matrix.ReservedSlot) { s.Row = 17 },
		"past window":      func(s *matrix.ReservedSlot) { s.Row = 53 },
		"label column":     func(s *matrix.ReservedSlot) { s.Column = 4 },
		"past last column": func(s *matrix.ReservedSlot) { s.Column = 36 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			if err := s.Validate(l); !errors.Is(err, matrix.ErrInvalidSlot) {
				t.Errorf("Validate() = %v, want ErrInvalidSlot", err)
			}
		})
	}
}
