// Package console imprime no terminal o resultado do resumo de reservas: mensagens de
// progresso, spinner de leitura da estimativa, tabela de estatísticas e o painel com o
// texto final.
package console

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console implementa types.ConsoleInterface sobre o pterm.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo, LogWarning, LogError e LogSuccess usam os prefixos coloridos do pterm.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

type spinnerStatus struct {
	spinner *pterm.SpinnerPrinter
}

// Status inicia um spinner, usado enquanto a estimativa é lida e processada.
// Se o terminal não suportar o spinner, Update e Stop viram no-op.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &spinnerStatus{spinner: spinner}
}

func (s *spinnerStatus) Update(message string) {
	if s.spinner != nil {
		s.spinner.UpdateText(message)
	}
}

func (s *spinnerStatus) Stop() {
	if s.spinner != nil {
		_ = s.spinner.Stop()
	}
}

// Table acumula as estatísticas do resumo (regiões, itens, totais) antes de desenhar.
type Table struct {
	columns []string
	rows    [][]string
}

func (c *Console) CreateTable() types.TableInterface {
	return &Table{}
}

// AddColumn ignora options; só o cabeçalho é usado.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

// Render desenha a tabela com cabeçalho ciano e borda.
func (t *Table) Render() string {
	data := append(pterm.TableData{t.columns}, t.rows...)

	rendered, _ := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	return rendered
}

// DisplayReport mostra o texto do resumo em pt-BR dentro de uma caixa com título.
func (c *Console) DisplayReport(title string, report string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(strings.TrimRight(report, "\n"))

	fmt.Println("\n" + panel)
}
