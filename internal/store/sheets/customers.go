package sheets

import (
	"context"
	"strings"

	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// Clienti column order: first_name, last_name, phone, email, birthday, notes.

func decodeCustomer(id uint, row []interface{}) models.Customer {
	return models.Customer{
		ID:        id,
		FirstName: cell(row, 0),
		LastName:  cell(row, 1),
		Phone:     cell(row, 2),
		Email:     cell(row, 3),
		Birthday:  cell(row, 4),
		Notes:     cell(row, 5),
	}
}

func encodeCustomer(c *models.Customer) []interface{} {
	return []interface{}{
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Email,
		c.Birthday,
		c.Notes,
	}
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.client.Read(ctx, rangeClienti)
	if err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(rows))
	for i, row := range rows {
		customers = append(customers, decodeCustomer(uint(i+1), row))
	}
	return customers, nil
}

// GetCustomer fetches the whole range and filters client-side; the Sheets
// API has no indexed lookup.
func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	rows, err := s.client.Read(ctx, rangeClienti)
	if err != nil {
		return nil, err
	}
	if err := checkRow(id, rows); err != nil {
		return nil, err
	}

	c := decodeCustomer(id, rows[id-1])
	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.client.Append(ctx, rangeClienti, [][]interface{}{encodeCustomer(c)})
}

func (s *Store) UpdateCustomer(ctx context.Context, id uint, c *models.Customer) error {
	rows, err := s.client.Read(ctx, rangeClienti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	c.ID = id
	return s.client.Update(ctx, rowRange(sheetClienti, id, "F"), [][]interface{}{encodeCustomer(c)})
}

// DeleteCustomer removes the physical row; every subsequent row is
// renumbered by the dimension delete.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	rows, err := s.client.Read(ctx, rangeClienti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	return s.client.DeleteRow(ctx, sheetClienti, int(id))
}

func (s *Store) FindCustomerByContact(ctx context.Context, phone, email string) (*models.Customer, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		c := &customers[i]
		if phone != "" && c.Phone == phone {
			return c, nil
		}
		if email != "" && c.Email != "" && strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}
