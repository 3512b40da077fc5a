package repository

import (
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
)

// ExportRepository grava o resumo gerado nos formatos suportados e devolve o caminho absoluto do arquivo.
type ExportRepository interface {
	ExportToTXT(report *entity.SummaryReport, filename, outputDir string) (string, error)
	ExportToJSON(report *entity.SummaryReport, filename, outputDir string) (string, error)
	ExportToCSV(report *entity.SummaryReport, filename, outputDir string) (string, error)
	ExportToPDF(report *entity.SummaryReport, filename, outputDir string) (string, error)
}
