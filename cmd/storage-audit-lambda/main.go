package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/diillson/aws-storage-audit-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-storage-audit-go/internal/adapter/driven/config"
	"github.com/diillson/aws-storage-audit-go/internal/adapter/driving/handler"
	"github.com/diillson/aws-storage-audit-go/internal/application/usecase"
	"github.com/diillson/aws-storage-audit-go/pkg/console"
	"github.com/diillson/aws-storage-audit-go/pkg/version"
)

func main() {
	env, err := config.LoadEnvConfig()
	if err != nil {
		console.NewStructuredLogger(os.Stdout, "info").LogError("%s", err)
		os.Exit(1)
	}

	logger := console.NewStructuredLogger(os.Stdout, env.LogLevel)
	log := logger.Zerolog()

	// Clientes criados uma vez por ambiente de execução e reutilizados entre invocações
	repos, err := aws.NewSession(env.Profile, env.Region).NewRepositories(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize AWS clients")
	}

	auditUseCase := usecase.NewAuditUseCase(repos.Inventory, repos.Storage, logger)
	h := handler.NewHandler(auditUseCase, env.BucketName, log)

	log.Info().Str("version", version.FormatVersion()).Msg("storage audit function ready")
	lambda.Start(h.Invoke)
}
