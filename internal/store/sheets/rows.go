package sheets

import (
	"fmt"
	"strconv"
)

// One named range per entity, one header row plus data rows. The Nth data
// row (1-based) is entity id N.
const (
	sheetClienti      = "Clienti"
	sheetAppuntamenti = "Appuntamenti"
	sheetProdotti     = "Prodotti"
	sheetRichieste    = "Richieste"

	rangeClienti      = "Clienti!A2:F"
	rangeAppuntamenti = "Appuntamenti!A2:I"
	rangeProdotti     = "Prodotti!A2:I"
	rangeRichieste    = "Richieste!A2:L"
)

// rowRange addresses the single data row for an id, e.g. id 3 on Clienti
// with last column F gives Clienti!A4:F4.
func rowRange(sheet string, id uint, lastCol string) string {
	row := id + 1 // header row offset
	return fmt.Sprintf("%s!A%d:%s%d", sheet, row, lastCol, row)
}

func headerRange(sheet string, lastCol string) string {
	return fmt.Sprintf("%s!A1:%s1", sheet, lastCol)
}

// Cell readers tolerate short rows and non-string values; the Sheets API
// returns formatted values, so everything arrives as text.

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return fmt.Sprintf("%v", row[i])
}

func cellInt(row []interface{}, i, def int) int {
	v, err := strconv.Atoi(cell(row, i))
	if err != nil {
		return def
	}
	return v
}

func cellFloat(row []interface{}, i int) float64 {
	v, err := strconv.ParseFloat(cell(row, i), 64)
	if err != nil {
		return 0
	}
	return v
}
