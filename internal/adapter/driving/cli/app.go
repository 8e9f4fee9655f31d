package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/aws-storage-audit-go/pkg/console"
	"github.com/diillson/aws-storage-audit-go/pkg/version"

	"github.com/diillson/aws-storage-audit-go/internal/application/usecase"
	"github.com/diillson/aws-storage-audit-go/internal/domain/entity"
	"github.com/diillson/aws-storage-audit-go/internal/domain/repository"
	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
	"github.com/aws/smithy-go"
	"github.com/spf13/cobra"
)

// Services reúne o que o comando precisa para um perfil/região.
type Services struct {
	UseCase  *usecase.AuditUseCase
	Identity repository.IdentityRepository
	Region   string
}

// ServiceFactory constrói os serviços depois que perfil e região são conhecidos.
type ServiceFactory func(ctx context.Context, profile, region string) (*Services, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	version    string
	console    types.ConsoleInterface
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	factory    ServiceFactory
	env        types.EnvConfig
	now        func() time.Time
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	consoleImpl types.ConsoleInterface,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		console:    consoleImpl,
		configRepo: configRepo,
		exportRepo: exportRepo,
		now:        time.Now,
	}

	rootCmd := &cobra.Command{
		Use:           "storage-audit",
		Short:         "Audit unattached and non-encrypted EBS volumes and snapshots",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Storage Audit version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: credential chain)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region to audit (default: profile/environment region)")
	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Destination bucket for metrics_output.json (default: $BUCKET_NAME)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Compute and display the report without writing it to the bucket")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for local report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"json"}, "Local report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the local report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetServiceFactory sets how AWS-backed services are built for the run.
func (app *CLIApp) SetServiceFactory(factory ServiceFactory) {
	app.factory = factory
}

// SetEnvConfig sets the environment configuration used as the lowest-precedence source.
func (app *CLIApp) SetEnvConfig(env types.EnvConfig) {
	app.env = env
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() *types.CLIArgs {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	bucket, _ := flags.GetString("bucket")
	dryRun, _ := flags.GetBool("dry-run")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	return &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		Region:     region,
		Bucket:     bucket,
		DryRun:     dryRun,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}
}

// applyConfigFile preenche com o arquivo de configuração os campos cujas flags não foram passadas.
func applyConfigFile(args *types.CLIArgs, cfg *types.Config, changed func(string) bool) {
	if cfg == nil {
		return
	}
	if !changed("profile") && cfg.Profile != "" {
		args.Profile = cfg.Profile
	}
	if !changed("region") && cfg.Region != "" {
		args.Region = cfg.Region
	}
	if !changed("bucket") && cfg.Bucket != "" {
		args.Bucket = cfg.Bucket
	}
	if !changed("dry-run") && cfg.DryRun {
		args.DryRun = true
	}
	if !changed("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !changed("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
}

// applyEnv usa o ambiente apenas para o que continuou vazio.
func applyEnv(args *types.CLIArgs, env types.EnvConfig) {
	if args.Bucket == "" {
		args.Bucket = env.BucketName
	}
	if args.Profile == "" {
		args.Profile = env.Profile
	}
	if args.Region == "" {
		args.Region = env.Region
	}
}

// resolveDir converte o diretório de saída em caminho absoluto.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs := app.parseArgs()

	if cliArgs.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		applyConfigFile(cliArgs, cfg, app.rootCmd.Flags().Changed)
	}
	applyEnv(cliArgs, app.env)

	dir, err := resolveDir(cliArgs.Dir)
	if err != nil {
		return err
	}
	cliArgs.Dir = dir

	if app.factory == nil {
		return errors.New("service factory not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.runAudit(ctx, cliArgs)
}

// runAudit executa a auditoria, exibe o resultado e exporta os relatórios locais.
func (app *CLIApp) runAudit(ctx context.Context, args *types.CLIArgs) error {
	if !args.DryRun && args.Bucket == "" {
		return types.ErrMissingBucket
	}

	services, err := app.factory(ctx, args.Profile, args.Region)
	if err != nil {
		return err
	}

	accountID, err := services.Identity.GetAccountID(ctx)
	if err != nil {
		app.console.LogWarning("Could not resolve account ID: %s", err)
		accountID = "Unknown"
	}
	app.console.LogInfo("Auditing account %s in region %s", accountID, services.Region)

	status := app.console.Status("Auditing volumes and snapshots...")
	var report entity.AuditReport
	if args.DryRun {
		report, err = services.UseCase.CollectReport(ctx)
	} else {
		report, err = services.UseCase.RunAudit(ctx, args.Bucket)
	}
	status.Stop()
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			app.console.LogError("AWS API error %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return err
	}

	summary := entity.AuditSummary{
		Profile:     args.Profile,
		AccountID:   accountID,
		Region:      services.Region,
		Bucket:      args.Bucket,
		ObjectKey:   entity.ReportObjectKey,
		GeneratedAt: app.now().UTC(),
		Published:   !args.DryRun,
		Report:      report,
	}

	app.displaySummary(summary)

	if args.DryRun {
		app.console.LogWarning("Dry run: report was not written to the bucket")
	}

	if args.ReportName != "" {
		app.exportSummary(summary, args)
	}

	return nil
}

// displaySummary imprime o relatório como tabela.
func (app *CLIApp) displaySummary(summary entity.AuditSummary) {
	table := app.console.CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Count")
	table.AddColumn("Size (GiB)")

	report := summary.Report
	table.AddRow("Unattached volumes", colorCount(report.UnattachedVolumes.Count), strconv.FormatInt(report.UnattachedVolumes.Size, 10))
	table.AddRow("Non-encrypted volumes", colorCount(report.NonEncryptedVolumes.Count), strconv.FormatInt(report.NonEncryptedVolumes.Size, 10))
	table.AddRow("Non-encrypted snapshots", colorCount(report.NonEncryptedSnapshots.Count), "-")

	app.console.Println()
	app.console.Println(console.BrightCyan(fmt.Sprintf("Account: %s (Region: %s)", summary.AccountID, summary.Region)))
	app.console.Print(table.Render())
	app.console.Println()
	app.console.LogInfo("Note: a volume can be both unattached and non-encrypted and is counted in both rows.")
}

func colorCount(n int) string {
	if n == 0 {
		return console.BrightGreen(n)
	}
	return console.BoldRed(n)
}

// exportSummary exporta o resumo nos formatos solicitados; falhas são apenas registradas.
func (app *CLIApp) exportSummary(summary entity.AuditSummary, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = app.exportRepo.ExportAuditSummaryToCSV(summary, args.ReportName, args.Dir)
		case "json":
			path, err = app.exportRepo.ExportAuditSummaryToJSON(summary, args.ReportName, args.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportAuditSummaryToPDF(summary, args.ReportName, args.Dir)
		default:
			err = fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}

		if err != nil {
			app.console.LogError("Failed to export audit report to %s: %s", reportType, err)
			continue
		}
		app.console.LogSuccess("Successfully exported audit report to %s: %s", reportType, path)
	}
}
