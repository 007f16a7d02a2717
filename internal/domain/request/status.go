package request

import "github.com/Mondre/Gresilda/internal/httperr"

// ===============================
// Appointment Request Status
// ===============================

type Stato string

const (
	StatoDaConfermare Stato = "DA_CONFERMARE"
	StatoConfermato   Stato = "CONFERMATO"
	StatoRifiutato    Stato = "RIFIUTATO"
	StatoChiamato     Stato = "CHIAMATO"
)

// Origin tag written on public submissions.
const OrigineSitoWeb = "SITO_WEB"

// ===============================
// Actions
// ===============================

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionCalled  Action = "called"
)

// StatoForAction maps a staff action onto the resulting status. Unknown
// actions are rejected before any state change. A rejected request may be
// confirmed later, so no transition is guarded on the current status.
func StatoForAction(action string) (Stato, error) {
	switch Action(action) {
	case ActionConfirm:
		return StatoConfermato, nil
	case ActionReject:
		return StatoRifiutato, nil
	case ActionCalled:
		return StatoChiamato, nil
	}
	return "", httperr.ErrBusiness("invalid_action")
}

func InitialStato() Stato {
	return StatoDaConfermare
}
