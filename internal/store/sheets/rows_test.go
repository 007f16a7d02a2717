package sheets

import "testing"

func TestRowRange(t *testing.T) {
	tests := []struct {
		sheet   string
		id      uint
		lastCol string
		want    string
	}{
		{sheetClienti, 1, "F", "Clienti!A2:F2"},
		{sheetClienti, 3, "F", "Clienti!A4:F4"},
		{sheetRichieste, 10, "L", "Richieste!A11:L11"},
	}

	for _, tt := range tests {
		if got := rowRange(tt.sheet, tt.id, tt.lastCol); got != tt.want {
			t.Errorf("rowRange(%s, %d, %s) = %q, want %q", tt.sheet, tt.id, tt.lastCol, got, tt.want)
		}
	}
}

func TestCellHelpers(t *testing.T) {
	row := []interface{}{"testo", nil, "42", "3.5"}

	if got := cell(row, 0); got != "testo" {
		t.Errorf("cell(0) = %q", got)
	}
	if got := cell(row, 1); got != "" {
		t.Errorf("cell(nil) = %q, want empty", got)
	}
	if got := cell(row, 9); got != "" {
		t.Errorf("cell(out of range) = %q, want empty", got)
	}
	if got := cellInt(row, 2, 0); got != 42 {
		t.Errorf("cellInt = %d, want 42", got)
	}
	if got := cellInt(row, 0, 7); got != 7 {
		t.Errorf("cellInt default = %d, want 7", got)
	}
	if got := cellFloat(row, 3); got != 3.5 {
		t.Errorf("cellFloat = %v, want 3.5", got)
	}
}
