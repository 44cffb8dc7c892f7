package grid

import (
	"reflect"
	"testing"
)

func TestDaysInFebruary(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2000, 29},
		{2024, 29},
		{1900, 28},
		{2023, 28},
		{2100, 28},
		{1600, 29},
		{0, 29},
		{-4, 29},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, 1); got != tt.want {
			t.Errorf("DaysIn(%d, Feb) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMatchesCalendar(t *testing.T) {
	want := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m, days := range want {
		if got := DaysIn(2023, m); got != days {
			t.Errorf("DaysIn(2023, %d) = %d, want %d", m, got, days)
		}
	}
}

func TestComputeShape(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		ws    WeekStart
		want  Shape
	}{
		// March 1, 2024 is a Friday.
		{"march 2024 sunday first", 2024, 2, SundayFirst, Shape{LeadingBlanks: 5, DayCount: 31}},
		{"march 2024 monday first", 2024, 2, MondayFirst, Shape{LeadingBlanks: 4, DayCount: 31}},
		// September 1, 2024 is a Sunday.
		{"september 2024 sunday first", 2024, 8, SundayFirst, Shape{LeadingBlanks: 0, DayCount: 30}},
		{"september 2024 monday first", 2024, 8, MondayFirst, Shape{LeadingBlanks: 6, DayCount: 30}},
		// January 1, 2024 is a Monday.
		{"january 2024 monday first", 2024, 0, MondayFirst, Shape{LeadingBlanks: 0, DayCount: 31}},
		{"january 2024 sunday first", 2024, 0, SundayFirst, Shape{LeadingBlanks: 1, DayCount: 31}},
		// February 2015 starts on Sunday and fits exactly four rows.
		{"february 2015", 2015, 1, SundayFirst, Shape{LeadingBlanks: 0, DayCount: 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeShape(tt.year, tt.month, tt.ws); got != tt.want {
				t.Fatalf("ComputeShape = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeShapeBlanksInRange(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := 0; month < 12; month++ {
			for _, ws := range []WeekStart{SundayFirst, MondayFirst} {
				s := ComputeShape(year, month, ws)
				if s.LeadingBlanks < 0 || s.LeadingBlanks > 6 {
					t.Fatalf("%d-%d %v: leading blanks %d out of range", year, month, ws, s.LeadingBlanks)
				}
				if s.DayCount < 28 || s.DayCount > 31 {
					t.Fatalf("%d-%d: day count %d out of range", year, month, s.DayCount)
				}
			}
			sun := ComputeShape(year, month, SundayFirst).LeadingBlanks
			mon := ComputeShape(year, month, MondayFirst).LeadingBlanks
			if mon != (sun+6)%7 {
				t.Fatalf("%d-%d: monday-first %d is not rotation of sunday-first %d", year, month, mon, sun)
			}
		}
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year, month, delta int
		wantYear, wantMon  int
	}{
		{2024, 0, -1, 2023, 11},
		{2024, 11, 1, 2025, 0},
		{2024, 5, 0, 2024, 5},
		{2024, 5, 25, 2026, 6},
		{2024, 5, -30, 2021, 11},
		{0, 0, -1, -1, 11},
	}
	for _, tt := range tests {
		y, m := ShiftMonth(tt.year, tt.month, tt.delta)
		if y != tt.wantYear || m != tt.wantMon {
			t.Errorf("ShiftMonth(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, tt.delta, y, m, tt.wantYear, tt.wantMon)
		}
	}
}

func TestCells(t *testing.T) {
	s := ComputeShape(2024, 2, SundayFirst)
	cells := s.Cells()
	if len(cells)%Columns != 0 {
		t.Fatalf("cells not padded to whole rows: %d", len(cells))
	}
	if s.Rows() != 6 {
		t.Fatalf("expected 6 rows for March 2024, got %d", s.Rows())
	}
	if cells[5] != 1 || cells[4] != 0 {
		t.Fatalf("expected day 1 in column 5, got %v", cells[:7])
	}
	if cells[5+30] != 31 {
		t.Fatalf("expected day 31 at index 35, got %d", cells[35])
	}
}

func TestParseWeekStart(t *testing.T) {
	for in, want := range map[string]WeekStart{
		"":       SundayFirst,
		"Sunday": SundayFirst,
		"sun":    SundayFirst,
		"MONDAY": MondayFirst,
		"mon":    MondayFirst,
	} {
		got, err := ParseWeekStart(in)
		if err != nil {
			t.Fatalf("ParseWeekStart(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseWeekStart(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseWeekStart("friday"); err == nil {
		t.Fatal("expected error for friday")
	}
}

func TestDayHeaders(t *testing.T) {
	if got := DayHeaders(SundayFirst); !reflect.DeepEqual(got, []string{"DOM", "LUN", "MAR", "MIÉ", "JUE", "VIE", "SÁB"}) {
		t.Fatalf("sunday headers = %v", got)
	}
	if got := DayHeaders(MondayFirst); !reflect.DeepEqual(got, []string{"LUN", "MAR", "MIÉ", "JUE", "VIE", "SÁB", "DOM"}) {
		t.Fatalf("monday headers = %v", got)
	}
}

func TestLongDate(t *testing.T) {
	if got := LongDate(2024, 2, 5); got != "martes, 5 de marzo de 2024" {
		t.Fatalf("LongDate = %q", got)
	}
	if got := MonthName(-1); got != "Diciembre" {
		t.Fatalf("MonthName(-1) = %q", got)
	}
}
