package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ListSeparator separates values inside list columns of a CSV catalog.
const ListSeparator = "|"

// CSVParser parses catalog records from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed records.
// Expected columns: id, name, image, architect, era, credit, architects, eras,
// nameAliases, architectAliases, eraAliases, explanation.
func (p *CSVParser) Parse(r io.Reader) ([]RawBuilding, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"id", "name", "image", "architect", "era"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawBuildings.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawBuilding, error) {
	var records []RawBuilding
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		records = append(records, p.parseRecord(record, colIndex, lineNum))
	}

	return records, nil
}

// parseRecord converts a CSV record to a RawBuilding.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) RawBuilding {
	return RawBuilding{
		ID:               getColumn(record, colIndex, "id"),
		Name:             getColumn(record, colIndex, "name"),
		Image:            getColumn(record, colIndex, "image"),
		Credit:           getColumn(record, colIndex, "credit"),
		Architect:        getColumn(record, colIndex, "architect"),
		Era:              getColumn(record, colIndex, "era"),
		Architects:       getListColumn(record, colIndex, "architects"),
		Eras:             getListColumn(record, colIndex, "eras"),
		NameAliases:      getListColumn(record, colIndex, "nameAliases"),
		ArchitectAliases: getListColumn(record, colIndex, "architectAliases"),
		EraAliases:       getListColumn(record, colIndex, "eraAliases"),
		Explanation:      getColumn(record, colIndex, "explanation"),
		LineNum:          lineNum,
	}
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}

// getListColumn splits a list column on ListSeparator, dropping blank values.
func getListColumn(record []string, colIndex map[string]int, col string) []string {
	raw := getColumn(record, colIndex, col)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(raw, ListSeparator) {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
