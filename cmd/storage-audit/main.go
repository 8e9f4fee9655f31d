package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/aws-storage-audit-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-storage-audit-go/internal/adapter/driven/config"
	"github.com/diillson/aws-storage-audit-go/internal/adapter/driven/export"
	"github.com/diillson/aws-storage-audit-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-storage-audit-go/internal/application/usecase"
	"github.com/diillson/aws-storage-audit-go/pkg/console"
	"github.com/diillson/aws-storage-audit-go/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(
		version.Version,
		consoleImpl,
		config.NewConfigRepository(),
		export.NewExportRepository(),
	)

	env, err := config.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	app.SetEnvConfig(env)

	// Os repositórios AWS só podem ser criados depois que perfil e região são resolvidos
	app.SetServiceFactory(func(ctx context.Context, profile, region string) (*cli.Services, error) {
		session := aws.NewSession(profile, region)
		repos, err := session.NewRepositories(ctx)
		if err != nil {
			return nil, err
		}
		effectiveRegion, err := session.Region(ctx)
		if err != nil {
			return nil, err
		}

		return &cli.Services{
			UseCase:  usecase.NewAuditUseCase(repos.Inventory, repos.Storage, consoleImpl),
			Identity: repos.Identity,
			Region:   effectiveRegion,
		}, nil
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
