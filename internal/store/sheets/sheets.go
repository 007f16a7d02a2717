// Package sheets implements the spreadsheet-backed store: four named
// ranges, one per entity, with the 1-based data-row offset doubling as the
// record identifier. Deleting a row renumbers every subsequent identifier;
// callers must not cache ids across deletes.
package sheets

import (
	"context"

	"github.com/Mondre/Gresilda/internal/store"
)

type Store struct {
	client Client
}

// New wraps an existing client; used by tests.
func New(client Client) *Store {
	return &Store{client: client}
}

// Connect builds the Google-backed store from service-account credentials.
func Connect(ctx context.Context, clientEmail, privateKey, projectID, spreadsheetID string) (*Store, error) {
	client, err := newGoogleClient(ctx, clientEmail, privateKey, projectID, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

// InitSheets writes the four header rows. Overwriting row 1 is idempotent.
func (s *Store) InitSheets(ctx context.Context) error {
	headers := []struct {
		writeRange string
		values     []interface{}
	}{
		{headerRange(sheetClienti, "F"), []interface{}{"Nome", "Cognome", "Telefono", "Email", "Compleanno", "Note"}},
		{headerRange(sheetAppuntamenti, "I"), []interface{}{"ID Cliente", "Nome Cliente", "Telefono", "Data", "Ora", "Servizio", "Durata", "Stato", "Note"}},
		{headerRange(sheetProdotti, "I"), []interface{}{"Nome", "Marca", "Categoria", "Quantità", "Quantità Min", "Prezzo Acquisto", "Prezzo Vendita", "Scadenza", "Note"}},
		{headerRange(sheetRichieste, "L"), []interface{}{"Nome", "Cognome", "Telefono", "Email", "Servizio", "Data Preferita", "Ora Preferita", "Note", "Stato", "Origine", "Data Richiesta", "Note Interne"}},
	}

	for _, h := range headers {
		if err := s.client.Update(ctx, h.writeRange, [][]interface{}{h.values}); err != nil {
			return err
		}
	}
	return nil
}

// checkRow validates a row-offset id against the current number of data
// rows. Out-of-range ids surface as the store-level not-found, so a repeat
// delete is a 404 rather than a stray dimension delete.
func checkRow(id uint, rows [][]interface{}) error {
	if id == 0 || int(id) > len(rows) {
		return store.ErrNotFound
	}
	return nil
}

var _ store.Store = (*Store)(nil)
