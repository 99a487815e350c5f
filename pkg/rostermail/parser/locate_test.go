package parser

import (
	"errors"
	"reflect"
	"testing"
)

// sheetRows builds the two-axis layout used across these tests: a date row,
// the header row below it, and data rows after that.
func sheetRows() [][]string {
	return [][]string{
		{"Weekly Schedule"},
		{"", "", "", "Apr 28 25", "Apr 29 25", "Apr 30 25", "May 01 25", "May 02 25"},
		{"Team", "Email", "Employee", "Mon", "Tue", "Wed", "Thu", "Fri"},
		{"Lead", "b@x.com", "Bob", "9am", "9am", "OFF", "9am", "9am"},
		{"X", "a@x.com", "Alice", "1", "2", "3", "4", "5"},
	}
}

func TestDynamicScanLocate(t *testing.T) {
	table, err := DynamicScan{}.Locate(sheetRows())
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	if table.HeaderIndex != 2 {
		t.Errorf("Expected header at row 2, got %d", table.HeaderIndex)
	}
	if len(table.DateAxis) != len(table.HeaderAxis) {
		t.Errorf("Axis lengths differ: date %d, header %d", len(table.DateAxis), len(table.HeaderAxis))
	}
	if table.DateAxis[3] != "Apr 28 25" {
		t.Errorf("Expected 'Apr 28 25' at column 3, got %q", table.DateAxis[3])
	}
	if len(table.DataRows) != 2 {
		t.Errorf("Expected 2 data rows, got %d", len(table.DataRows))
	}
}

func TestDynamicScanCaseInsensitive(t *testing.T) {
	rows := [][]string{
		{"Apr 28 25", "Apr 29 25", "Apr 30 25"},
		{" team ", "EMAIL", "employee"},
		{"Lead", "b@x.com", "Bob"},
	}
	table, err := DynamicScan{}.Locate(rows)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if table.HeaderIndex != 1 {
		t.Errorf("Expected header at row 1, got %d", table.HeaderIndex)
	}
	// Header labels come back trimmed.
	if table.HeaderAxis[0] != "team" {
		t.Errorf("Expected trimmed 'team', got %q", table.HeaderAxis[0])
	}
}

func TestDynamicScanHeaderNotFound(t *testing.T) {
	rows := [][]string{
		{"Apr 28 25"},
		{"Team", "Email"}, // Employee missing
	}
	_, err := DynamicScan{}.Locate(rows)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("Expected ErrHeaderNotFound, got %v", err)
	}
}

func TestDynamicScanHeaderAtFirstRow(t *testing.T) {
	// A header on row 0 leaves no row above for the date axis.
	rows := [][]string{
		{"Team", "Email", "Employee"},
		{"Lead", "b@x.com", "Bob"},
	}
	_, err := DynamicScan{}.Locate(rows)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("Expected ErrHeaderNotFound, got %v", err)
	}
}

func TestFixedOffsetLocate(t *testing.T) {
	table, err := (FixedOffset{DateRow: 1, HeaderRow: 2}).Locate(sheetRows())
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if table.HeaderIndex != 2 {
		t.Errorf("Expected header at row 2, got %d", table.HeaderIndex)
	}
	if table.DateAxis[4] != "Apr 29 25" {
		t.Errorf("Expected 'Apr 29 25' at column 4, got %q", table.DateAxis[4])
	}
}

func TestFixedOffsetWrongLayout(t *testing.T) {
	rows := [][]string{
		{"Team", "Email", "Employee"},
		{"Lead", "b@x.com", "Bob"},
	}
	_, err := (FixedOffset{DateRow: 1, HeaderRow: 2}).Locate(rows)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("Expected ErrHeaderNotFound, got %v", err)
	}
}

func TestCoerceDateAxis(t *testing.T) {
	// Parseable cells become canonical short labels; everything else keeps
	// its trimmed string, and the axis is padded to the header width.
	axis := coerceDateAxis([]string{" notes ", "2025-04-28", "04/29/25", "Week 18"}, 6)

	expected := []string{"notes", "Apr 28 25", "Apr 29 25", "Week 18", "", ""}
	if !reflect.DeepEqual(axis, expected) {
		t.Errorf("coerceDateAxis = %v, expected %v", axis, expected)
	}
}

func TestNewLocator(t *testing.T) {
	tests := []struct {
		strategy Strategy
		wantErr  bool
	}{
		{StrategyDynamic, false},
		{StrategyFixed, false},
		{"", false},
		{"guesswork", true},
	}

	for _, tt := range tests {
		_, err := NewLocator(tt.strategy)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewLocator(%q) error = %v, wantErr %v", tt.strategy, err, tt.wantErr)
		}
	}
}
