package request

import "testing"

func TestStatoForAction(t *testing.T) {
	tests := []struct {
		action  string
		want    Stato
		wantErr bool
	}{
		{action: "confirm", want: StatoConfermato},
		{action: "reject", want: StatoRifiutato},
		{action: "called", want: StatoChiamato},
		{action: "CONFIRM", wantErr: true},
		{action: "delete", wantErr: true},
		{action: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("action "+tt.action, func(t *testing.T) {
			got, err := StatoForAction(tt.action)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("StatoForAction(%q) = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestInitialStato(t *testing.T) {
	if InitialStato() != StatoDaConfermare {
		t.Errorf("InitialStato() = %q", InitialStato())
	}
}
