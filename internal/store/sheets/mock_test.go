package sheets

import (
	"context"
	"fmt"
)

type mockClient struct {
	ReadFunc      func(ctx context.Context, readRange string) ([][]interface{}, error)
	AppendFunc    func(ctx context.Context, writeRange string, values [][]interface{}) error
	UpdateFunc    func(ctx context.Context, writeRange string, values [][]interface{}) error
	DeleteRowFunc func(ctx context.Context, sheet string, row int) error

	ReadCalls   []string
	AppendCalls []mockCall
	UpdateCalls []mockCall
	DeleteCalls []deleteCall
}

type mockCall struct {
	Range  string
	Values [][]interface{}
}

type deleteCall struct {
	Sheet string
	Row   int
}

func (m *mockClient) Read(ctx context.Context, readRange string) ([][]interface{}, error) {
	m.ReadCalls = append(m.ReadCalls, readRange)
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, readRange)
	}
	return nil, fmt.Errorf("Read not implemented")
}

func (m *mockClient) Append(ctx context.Context, writeRange string, values [][]interface{}) error {
	m.AppendCalls = append(m.AppendCalls, mockCall{Range: writeRange, Values: values})
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, writeRange, values)
	}
	return nil
}

func (m *mockClient) Update(ctx context.Context, writeRange string, values [][]interface{}) error {
	m.UpdateCalls = append(m.UpdateCalls, mockCall{Range: writeRange, Values: values})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, writeRange, values)
	}
	return nil
}

func (m *mockClient) DeleteRow(ctx context.Context, sheet string, row int) error {
	m.DeleteCalls = append(m.DeleteCalls, deleteCall{Sheet: sheet, Row: row})
	if m.DeleteRowFunc != nil {
		return m.DeleteRowFunc(ctx, sheet, row)
	}
	return nil
}

// staticRead serves fixed rows for a single range and empty data for every
// other range.
func staticRead(wantRange string, rows [][]interface{}) func(ctx context.Context, readRange string) ([][]interface{}, error) {
	return func(_ context.Context, readRange string) ([][]interface{}, error) {
		if readRange == wantRange {
			return rows, nil
		}
		return nil, nil
	}
}
