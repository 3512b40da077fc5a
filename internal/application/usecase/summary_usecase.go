package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-reservation-summary/internal/domain/calculator"
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reportTitle = "Resumo de reservas AWS"

// Mensagens de aviso devolvidas junto com o resumo.
const (
	warnMissingAccount  = "AWS account ID not found in the group hierarchy"
	warnResolvedAccount = "AWS account ID %s resolved from the credentials of profile %q"
	warnResolveFailed   = "could not resolve the AWS account ID from credentials: %v"
	warnNoRecords       = "the detailed estimate section has no rows"
	warnNoItems         = "no reservable items found: every row was On-Demand or of an unsupported service"
)

// SummaryRequest is one summary computation: the calculator options plus the optional
// account fallback through STS.
type SummaryRequest struct {
	Options        entity.SummaryOptions
	ResolveAccount bool
	Profile        string
}

// SummaryUseCase handles the reservation summary flow.
type SummaryUseCase struct {
	sourceRepo repository.SourceRepository
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	logger     *zap.Logger

	newRunID func() string
	now      func() time.Time
}

// NewSummaryUseCase creates a new summary use case. A nil logger disables the run log.
func NewSummaryUseCase(
	sourceRepo repository.SourceRepository,
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	logger *zap.Logger,
) *SummaryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryUseCase{
		sourceRepo: sourceRepo,
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		console:    console,
		logger:     logger,
		newRunID:   uuid.NewString,
		now:        time.Now,
	}
}

// GenerateSummary turns the raw bytes of a calculator export into a summary report.
// Structural problems with the file and invalid options are returned as errors; data
// quality problems end up in the report's warnings.
func (uc *SummaryUseCase) GenerateSummary(ctx context.Context, raw []byte, req SummaryRequest) (*entity.SummaryReport, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	records, err := calculator.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing estimate: %w", err)
	}

	result, dropped := calculator.BuildEstimate(records, opts.ClassifyOptions)
	for _, row := range dropped {
		uc.logger.Debug("row dropped",
			zap.String("reason", string(row.Reason)),
			zap.String("service", row.Record.Service),
			zap.String("region", row.Record.Region),
		)
	}

	var warnings []string
	if len(records) == 0 {
		warnings = append(warnings, warnNoRecords)
	} else if result.ItemCount() == 0 {
		warnings = append(warnings, warnNoItems)
	}

	if len(records) > 0 && result.AccountID == "" {
		warnings = append(warnings, uc.resolveAccount(ctx, &result, req)...)
	}

	totals := calculator.ComputeTotals(result)
	report := &entity.SummaryReport{
		RunID:        uc.newRunID(),
		GeneratedAt:  uc.now(),
		ClientName:   result.ClientName,
		AccountID:    result.AccountID,
		Regions:      result.Regions,
		Items:        calculator.Items(result),
		RecordCount:  len(records),
		DroppedCount: len(dropped),
		Totals:       totals,
		UpfrontPlan:  calculator.UpfrontPlan(totals, opts),
		DeferredPlan: calculator.DeferredPlan(totals, opts),
		Options:      opts,
		Warnings:     warnings,
		Summary:      calculator.Render(result, opts),
	}

	uc.logger.Info("summary generated",
		zap.String("run_id", report.RunID),
		zap.String("client", report.ClientName),
		zap.String("account", report.AccountID),
		zap.Int("records", report.RecordCount),
		zap.Int("items", len(report.Items)),
		zap.Int("dropped", report.DroppedCount),
		zap.Int("regions", len(report.Regions)),
		zap.String("grand_no_upfront", totals.GrandDeferred.StringFixed(2)),
		zap.String("grand_all_upfront", totals.GrandUpfront.StringFixed(2)),
	)

	return report, nil
}

// resolveAccount fills a missing account from the caller identity when the request allows it.
func (uc *SummaryUseCase) resolveAccount(ctx context.Context, result *entity.EstimateResult, req SummaryRequest) []string {
	if !req.ResolveAccount || uc.awsRepo == nil {
		uc.logger.Warn("account id missing from estimate")
		return []string{warnMissingAccount}
	}

	accountID, err := uc.awsRepo.GetAccountID(ctx, req.Profile)
	if err == nil && accountID == "" {
		err = fmt.Errorf("empty caller identity")
	}
	if err != nil {
		uc.logger.Warn("account id missing from estimate and could not be resolved", zap.Error(err))
		return []string{warnMissingAccount, fmt.Sprintf(warnResolveFailed, err)}
	}

	result.AccountID = accountID
	uc.logger.Info("account id resolved from credentials", zap.String("account", accountID), zap.String("profile", req.Profile))
	return []string{fmt.Sprintf(warnResolvedAccount, accountID, req.Profile)}
}

// RunSummary é o fluxo da CLI: lê a exportação, gera o resumo, exibe e exporta.
func (uc *SummaryUseCase) RunSummary(ctx context.Context, location string, cfg *types.Config) error {
	uc.checkProfile(location, cfg)

	status := uc.console.Status("Reading estimate...")
	raw, err := uc.sourceRepo.ReadEstimate(ctx, location, cfg.Profile)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Calculating summary...")
	report, err := uc.GenerateSummary(ctx, raw, SummaryRequest{
		Options:        SummaryOptionsFromConfig(cfg),
		ResolveAccount: cfg.ResolveAccount,
		Profile:        cfg.Profile,
	})
	status.Stop()
	if err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		uc.console.LogWarning("%s", warning)
	}

	uc.console.DisplayReport(reportTitle, report.Summary)
	uc.console.Print(uc.createStatisticsTable(report).Render())

	uc.exportReport(report, cfg)
	return nil
}

// checkProfile avisa quando o perfil pedido não existe, mas só se ele for usado.
func (uc *SummaryUseCase) checkProfile(location string, cfg *types.Config) {
	if cfg.Profile == "" || uc.awsRepo == nil {
		return
	}
	if !cfg.ResolveAccount && !isS3Location(location) {
		return
	}
	for _, profile := range uc.awsRepo.GetAWSProfiles() {
		if profile == cfg.Profile {
			return
		}
	}
	uc.console.LogWarning("Profile '%s' not found in AWS configuration", cfg.Profile)
}

func isS3Location(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

func (uc *SummaryUseCase) createStatisticsTable(report *entity.SummaryReport) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Regiões")
	table.AddColumn("Itens classificados")
	table.AddColumn("Linhas ignoradas")
	table.AddColumn("Total No Upfront (USD/mês)")
	table.AddColumn("Total All Upfront (USD/ano)")
	table.AddRow(
		len(report.Regions),
		len(report.Items),
		report.DroppedCount,
		report.Totals.GrandDeferred.StringFixed(2),
		report.Totals.GrandUpfront.StringFixed(2),
	)
	return table
}

// exportReport grava o resumo em cada formato pedido. Falhas de exportação não abortam a execução.
func (uc *SummaryUseCase) exportReport(report *entity.SummaryReport, cfg *types.Config) {
	for _, reportType := range cfg.ReportType {
		switch reportType {
		case types.ReportTypeTXT:
			txtPath, err := uc.exportRepo.ExportToTXT(report, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to TXT: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to TXT: %s", txtPath)
			}
		case types.ReportTypeJSON:
			jsonPath, err := uc.exportRepo.ExportToJSON(report, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case types.ReportTypeCSV:
			csvPath, err := uc.exportRepo.ExportToCSV(report, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case types.ReportTypePDF:
			pdfPath, err := uc.exportRepo.ExportToPDF(report, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unsupported report type '%s' ignored", reportType)
		}
	}
}
