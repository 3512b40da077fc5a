package calculator

import (
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/shared/types"
)

const byteOrderMark = "\ufeff"

var (
	// Marcadores do cabeçalho da seção detalhada (pt-BR e en).
	sectionStartMarkers = []string{"Estimativa detalhada", "Detailed Estimate"}
	// Marcadores da seção de confirmação que encerra a tabela.
	sectionEndMarkers = []string{"Confirmação", "Acknowledgement"}
)

// LocateSection returns the lines of the detailed-estimate table, header row included.
// The table starts on the line after the section marker and ends before the first blank
// line or acknowledgement marker found after the header row.
func LocateSection(raw []byte) ([]string, error) {
	content := strings.TrimPrefix(string(raw), byteOrderMark)
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	start := -1
	for i, line := range lines {
		if containsAny(line, sectionStartMarkers) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil, &types.SectionNotFoundError{Markers: sectionStartMarkers}
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" || containsAny(lines[i], sectionEndMarkers) {
			end = i
			break
		}
	}
	if start > end {
		start = end
	}

	return lines[start:end], nil
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
