package media

import "testing"

func TestNewRecordTrimsFields(t *testing.T) {
	rec, err := NewRecord("  night-train  ", " /library/night-train.mkv ", " Night Train ")
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}
	if rec.ID != "night-train" {
		t.Errorf("ID mismatch: got %q", rec.ID)
	}
	if rec.Locator != "/library/night-train.mkv" {
		t.Errorf("Locator mismatch: got %q", rec.Locator)
	}
	if rec.Title != "Night Train" {
		t.Errorf("Title mismatch: got %q", rec.Title)
	}
}

func TestNewRecordRejectsEmptyID(t *testing.T) {
	if _, err := NewRecord("", "loc", ""); err == nil {
		t.Fatal("expected error for empty id")
	}
	if _, err := NewRecord("   ", "loc", ""); err == nil {
		t.Fatal("expected error for whitespace id")
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"explicit title wins", Record{ID: "x", Title: "the great escape"}, "The Great Escape"},
		{"derived from id", Record{ID: "night_train-part.two"}, "Night Train Part Two"},
		{"single word", Record{ID: "intermission"}, "Intermission"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
