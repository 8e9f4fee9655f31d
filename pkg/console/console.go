package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
)

// Cores usadas nas contagens e cabeçalhos do resumo.
var (
	BoldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Console implementa types.ConsoleInterface sobre pterm.
type Console struct {
	out io.Writer
}

// NewConsole cria um Console que escreve em stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

func (c *Console) Print(a ...interface{})                 { fmt.Fprint(c.out, a...) }
func (c *Console) Printf(format string, a ...interface{}) { fmt.Fprintf(c.out, format, a...) }
func (c *Console) Println(a ...interface{})               { fmt.Fprintln(c.out, a...) }

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

// Status inicia um spinner; o chamador deve chamar Stop.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// CreateTable cria uma tabela vazia; a primeira linha dos dados é o cabeçalho.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{data: pterm.TableData{{}}}
}

// Table acumula cabeçalho e linhas como pterm.TableData.
type Table struct {
	data pterm.TableData
}

func (t *Table) AddColumn(name string, _ ...interface{}) {
	t.data[0] = append(t.data[0], name)
}

func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.data = append(t.data, row)
}

// Render devolve a tabela com borda e cabeçalho em ciano.
func (t *Table) Render() string {
	rendered, _ := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(t.data).
		Srender()
	return rendered
}
