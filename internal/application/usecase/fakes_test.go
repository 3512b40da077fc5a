package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
)

type fakeConsole struct {
	infos    []string
	warnings []string
	errors   []string
	success  []string
	reports  []string
	printed  []string
	tables   []*fakeTable
}

func (c *fakeConsole) Print(a ...interface{})                 { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.printed = append(c.printed, fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}
func (c *fakeConsole) DisplayReport(title string, report string) {
	c.reports = append(c.reports, report)
}

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop()                 {}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                                { return "table" }

type fakeSource struct {
	data     map[string][]byte
	location string
	profile  string
}

func (s *fakeSource) ReadEstimate(ctx context.Context, location, profile string) ([]byte, error) {
	s.location, s.profile = location, profile
	data, ok := s.data[location]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

type fakeAWS struct {
	accountID string
	err       error
	profiles  []string
	calls     int
}

func (a *fakeAWS) GetAWSProfiles() []string { return a.profiles }
func (a *fakeAWS) GetAccountID(ctx context.Context, profile string) (string, error) {
	a.calls++
	return a.accountID, a.err
}
func (a *fakeAWS) GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error) {
	return nil, errors.New("not used")
}

type fakeExport struct {
	calls []string
	fail  map[string]bool
}

func (e *fakeExport) export(kind, filename string) (string, error) {
	e.calls = append(e.calls, kind+":"+filename)
	if e.fail[kind] {
		return "", errors.New("disk full")
	}
	return "/tmp/" + filename + "." + kind, nil
}

func (e *fakeExport) ExportToTXT(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	return e.export("txt", filename)
}
func (e *fakeExport) ExportToJSON(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	return e.export("json", filename)
}
func (e *fakeExport) ExportToCSV(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	return e.export("csv", filename)
}
func (e *fakeExport) ExportToPDF(report *entity.SummaryReport, filename, outputDir string) (string, error) {
	return e.export("pdf", filename)
}

type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (f *fakeConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return f.cfg, f.err
}
