package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client is the thin transport under the spreadsheet store. The google
// implementation talks to the Sheets API; tests substitute a mock.
type Client interface {
	Read(ctx context.Context, readRange string) ([][]interface{}, error)
	Append(ctx context.Context, writeRange string, values [][]interface{}) error
	Update(ctx context.Context, writeRange string, values [][]interface{}) error
	// DeleteRow removes the physical grid row at the given 0-based index.
	DeleteRow(ctx context.Context, sheet string, row int) error
}

// Distinct failures surfaced to callers; everything else collapses to a
// generic operation error.
var (
	ErrAuth       = errors.New("google sheets authentication failed - invalid credentials")
	ErrPermission = errors.New("google sheets access denied - check permissions")
	ErrNotFound   = errors.New("google sheets spreadsheet not found")
)

// classify maps API failures onto the error taxonomy by inspecting the
// error text, mirroring how the Sheets API reports them.
func classify(op string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid_grant"):
		return ErrAuth
	case strings.Contains(msg, "permission"):
		return ErrPermission
	case strings.Contains(msg, "not found"), strings.Contains(msg, "unable to parse range"):
		return ErrNotFound
	}
	return fmt.Errorf("google sheets %s failed: %w", op, err)
}

type googleClient struct {
	srv           *sheetsapi.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// serviceAccount assembles the credentials JSON the API client expects
// from the three credential variables. Private keys arrive from the
// environment with literal "\n" sequences.
func serviceAccount(clientEmail, privateKey, projectID string) ([]byte, error) {
	if clientEmail == "" || privateKey == "" {
		return nil, fmt.Errorf("service account credentials are required")
	}
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": clientEmail,
		"private_key":  strings.ReplaceAll(privateKey, `\n`, "\n"),
		"project_id":   projectID,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

func newGoogleClient(ctx context.Context, clientEmail, privateKey, projectID, spreadsheetID string) (*googleClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	creds, err := serviceAccount(clientEmail, privateKey, projectID)
	if err != nil {
		return nil, err
	}

	srv, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &googleClient{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

func (c *googleClient) Read(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("read", err)
	}
	return resp.Values, nil
}

func (c *googleClient) Append(ctx context.Context, writeRange string, values [][]interface{}) error {
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return classify("append", err)
	}
	return nil
}

func (c *googleClient) Update(ctx context.Context, writeRange string, values [][]interface{}) error {
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return classify("update", err)
	}
	return nil
}

func (c *googleClient) DeleteRow(ctx context.Context, sheet string, row int) error {
	sheetID, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row),
					EndIndex:   int64(row + 1),
				},
			},
		}},
	}

	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return classify("delete", err)
	}
	return nil
}

// sheetID resolves a sheet title to its numeric id via the spreadsheet
// metadata, cached for the process lifetime.
func (c *googleClient) sheetID(ctx context.Context, sheet string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.sheetIDs[sheet]; ok {
		return id, nil
	}

	meta, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, classify("metadata", err)
	}

	for _, s := range meta.Sheets {
		if s.Properties != nil {
			c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}

	id, ok := c.sheetIDs[sheet]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}
