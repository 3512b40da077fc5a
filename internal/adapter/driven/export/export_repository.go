package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
	"github.com/goccy/go-json"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportToTXT grava o texto do resumo exatamente como renderizado.
func (r *ExportRepositoryImpl) ExportToTXT(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(reportBaseName(report, filename), outputDir, "txt")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(report.Summary), 0644); err != nil {
		return "", fmt.Errorf("error writing TXT file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(reportBaseName(report, filename), outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// csvHeaders são as colunas da exportação CSV, uma linha por item classificado.
var csvHeaders = []string{
	"Region", "Family", "Service", "Instance Type", "Quantity", "Specs",
	"Payment Mode", "Cost (USD)", "Upfront (USD)",
}

func (r *ExportRepositoryImpl) ExportToCSV(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(reportBaseName(report, filename), outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, item := range report.Items {
		record := []string{
			item.Region,
			string(item.Family),
			item.ServiceName,
			item.Type,
			strconv.Itoa(item.Quantity),
			strings.Join(item.Specs, "; "),
			string(item.PaymentMode),
			item.Cost.StringFixed(2),
			item.Upfront.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF lays the report out with one section per block of the rendered text.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(reportBaseName(report, filename), outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = r.now()
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by AWS Reservation Summary | %s | run %s", generatedAt.Format("2006-01-02"), report.RunID)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", truncateRunes(report.ClientName, 80))), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Conta AWS: %s", report.AccountID)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	for _, block := range splitBlocks(report.Summary) {
		title, body, _ := strings.Cut(block, "\n")
		drawSection(title, body)
	}

	if len(report.Warnings) > 0 {
		drawSection("Avisos", strings.Join(report.Warnings, "\n"))
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// splitBlocks separa o texto do resumo nos blocos delimitados por linha em branco.
// truncateRunes corta s em limit caracteres, terminando em "..." quando houve corte.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func splitBlocks(summary string) []string {
	var blocks []string
	for _, block := range strings.Split(summary, "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// reportBaseName usa o nome pedido ou, sem ele, resumo_aws_<cliente>_<conta>.
func reportBaseName(report *entity.SummaryReport, filename string) string {
	if filename != "" {
		return filename
	}
	base := fmt.Sprintf("resumo_aws_%s_%s", report.ClientName, report.AccountID)
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(base, "_"), "_")
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
