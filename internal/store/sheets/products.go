package sheets

import (
	"context"

	"github.com/Mondre/Gresilda/internal/models"
)

// Prodotti column order: name, brand, category, quantity, min_quantity,
// price_purchase, price_sale, expiration_date, notes.

func decodeProduct(id uint, row []interface{}) models.Product {
	return models.Product{
		ID:            id,
		Name:          cell(row, 0),
		Brand:         cell(row, 1),
		Category:      cell(row, 2),
		Quantity:      cellInt(row, 3, 0),
		MinimumStock:  cellInt(row, 4, 0),
		PricePurchase: cellFloat(row, 5),
		PriceSale:     cellFloat(row, 6),
		ExpiryDate:    cell(row, 7),
		Notes:         cell(row, 8),
	}
}

func encodeProduct(p *models.Product) []interface{} {
	return []interface{}{
		p.Name,
		p.Brand,
		p.Category,
		p.Quantity,
		p.MinimumStock,
		p.PricePurchase,
		p.PriceSale,
		p.ExpiryDate,
		p.Notes,
	}
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.client.Read(ctx, rangeProdotti)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for i, row := range rows {
		products = append(products, decodeProduct(uint(i+1), row))
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	rows, err := s.client.Read(ctx, rangeProdotti)
	if err != nil {
		return nil, err
	}
	if err := checkRow(id, rows); err != nil {
		return nil, err
	}

	p := decodeProduct(id, rows[id-1])
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.client.Append(ctx, rangeProdotti, [][]interface{}{encodeProduct(p)})
}

func (s *Store) UpdateProduct(ctx context.Context, id uint, p *models.Product) error {
	rows, err := s.client.Read(ctx, rangeProdotti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	p.ID = id
	return s.client.Update(ctx, rowRange(sheetProdotti, id, "I"), [][]interface{}{encodeProduct(p)})
}

func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	rows, err := s.client.Read(ctx, rangeProdotti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	return s.client.DeleteRow(ctx, sheetProdotti, int(id))
}
