package sheets

import (
	"context"
	"sort"

	"github.com/Mondre/Gresilda/internal/models"
)

// Richieste column order: nome, cognome, telefono, email, servizio,
// data_preferita, ora_preferita, note, stato, origine, data_richiesta,
// note_interne.

func decodeRequest(id uint, row []interface{}) models.AppointmentRequest {
	return models.AppointmentRequest{
		ID:            id,
		Nome:          cell(row, 0),
		Cognome:       cell(row, 1),
		Telefono:      cell(row, 2),
		Email:         cell(row, 3),
		Servizio:      cell(row, 4),
		DataPreferita: cell(row, 5),
		OraPreferita:  cell(row, 6),
		Note:          cell(row, 7),
		Stato:         cell(row, 8),
		Origine:       cell(row, 9),
		DataRichiesta: cell(row, 10),
		NoteInterne:   cell(row, 11),
	}
}

func encodeRequest(r *models.AppointmentRequest) []interface{} {
	return []interface{}{
		r.Nome,
		r.Cognome,
		r.Telefono,
		r.Email,
		r.Servizio,
		r.DataPreferita,
		r.OraPreferita,
		r.Note,
		r.Stato,
		r.Origine,
		r.DataRichiesta,
		r.NoteInterne,
	}
}

func (s *Store) ListRequests(ctx context.Context) ([]models.AppointmentRequest, error) {
	rows, err := s.client.Read(ctx, rangeRichieste)
	if err != nil {
		return nil, err
	}

	reqs := make([]models.AppointmentRequest, 0, len(rows))
	for i, row := range rows {
		reqs = append(reqs, decodeRequest(uint(i+1), row))
	}

	// Newest first, same ordering as the local database. RFC 3339 stamps
	// sort lexicographically.
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].DataRichiesta > reqs[j].DataRichiesta
	})
	return reqs, nil
}

func (s *Store) GetRequest(ctx context.Context, id uint) (*models.AppointmentRequest, error) {
	rows, err := s.client.Read(ctx, rangeRichieste)
	if err != nil {
		return nil, err
	}
	if err := checkRow(id, rows); err != nil {
		return nil, err
	}

	r := decodeRequest(id, rows[id-1])
	return &r, nil
}

func (s *Store) CreateRequest(ctx context.Context, r *models.AppointmentRequest) error {
	return s.client.Append(ctx, rangeRichieste, [][]interface{}{encodeRequest(r)})
}

// UpdateRequestStatus rewrites the whole row with the new status and
// internal notes; the remaining fields are carried over unchanged.
func (s *Store) UpdateRequestStatus(ctx context.Context, id uint, stato, noteInterne string) error {
	rows, err := s.client.Read(ctx, rangeRichieste)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	r := decodeRequest(id, rows[id-1])
	r.Stato = stato
	r.NoteInterne = noteInterne

	return s.client.Update(ctx, rowRange(sheetRichieste, id, "L"), [][]interface{}{encodeRequest(&r)})
}

func (s *Store) DeleteRequest(ctx context.Context, id uint) error {
	rows, err := s.client.Read(ctx, rangeRichieste)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	return s.client.DeleteRow(ctx, sheetRichieste, int(id))
}
