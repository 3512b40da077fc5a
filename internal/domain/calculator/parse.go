package calculator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/shopspring/decimal"
)

type column int

const (
	colHierarchy column = iota
	colRegion
	colService
	colUpfront
	colMonthly
	colConfig
	columnCount
)

// columnLayout é um conjunto de nomes de coluna de uma variante de idioma da exportação.
type columnLayout struct {
	language string
	names    [columnCount]string
}

// Portuguese is the canonical layout; the English export is renamed onto it.
var columnLayouts = []columnLayout{
	{
		language: "pt-BR",
		names:    [columnCount]string{"Hierarquia de grupos", "Região", "Serviço", "Pagamento adiantado", "Mensal", "Resumo da configuração"},
	},
	{
		language: "en",
		names:    [columnCount]string{"Group hierarchy", "Region", "Service", "Upfront", "Monthly", "Configuration summary"},
	},
}

// Parse locates the detailed-estimate section in raw and returns its rows.
func Parse(raw []byte) ([]entity.RawRecord, error) {
	lines, err := LocateSection(raw)
	if err != nil {
		return nil, err
	}
	return ParseSection(lines)
}

// ParseSection parses the located table lines into records with canonical fields.
func ParseSection(lines []string) ([]entity.RawRecord, error) {
	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error reading estimate header: %w", err)
	}

	index, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []entity.RawRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading estimate row: %w", err)
		}
		if isBlankRow(row) {
			continue
		}

		field := func(c column) string {
			i := index[c]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, entity.RawRecord{
			Hierarchy: field(colHierarchy),
			Region:    field(colRegion),
			Service:   field(colService),
			Upfront:   parseAmount(field(colUpfront)),
			Monthly:   parseAmount(field(colMonthly)),
			Config:    field(colConfig),
		})
	}

	return records, nil
}

// resolveColumns maps each canonical column to its position in the header, trying the
// layouts in order. It fails listing what each layout is missing.
func resolveColumns(header []string) ([columnCount]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	missing := make([][]string, len(columnLayouts))
	for li, layout := range columnLayouts {
		var index [columnCount]int
		for c, name := range layout.names {
			pos, ok := positions[name]
			if !ok {
				missing[li] = append(missing[li], name)
				continue
			}
			index[c] = pos
		}
		if len(missing[li]) == 0 {
			return index, nil
		}
	}

	return [columnCount]int{}, &types.SchemaMismatchError{
		MissingPortuguese: missing[0],
		MissingEnglish:    missing[1],
	}
}

// parseAmount converts a currency cell to a decimal; empty or malformed cells become zero.
func parseAmount(cell string) decimal.Decimal {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.TrimPrefix(cleaned, "USD")
	cleaned = strings.TrimPrefix(strings.TrimSpace(cleaned), "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
