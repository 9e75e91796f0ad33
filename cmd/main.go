package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"pillpopper-skill/handler"
	"pillpopper-skill/internal/integrations/paramstore"
	"pillpopper-skill/internal/repository"
	"pillpopper-skill/internal/usecase"
)

const defaultTable = "Ingestions"

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	tableName := envOr("INGESTIONS_TABLE", defaultTable)
	skillIDEnv := os.Getenv("ALEXA_SKILL_ID")
	paramPrefix := os.Getenv("PARAM_PREFIX")
	if skillIDEnv == "" && paramPrefix == "" {
		slog.Error("either ALEXA_SKILL_ID or PARAM_PREFIX must be set")
		os.Exit(1)
	}

	// ---- AWS SDK config ----
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	skillID := skillIDEnv
	if skillID == "" {
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
		if err != nil {
			slog.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		skillID, err = ssmClient.LoadSkillID(ctx, paramPrefix)
		if err != nil {
			slog.Error("failed to load skill id from parameter store", "err", err)
			os.Exit(1)
		}
	}

	store, err := repository.New(awsdynamodb.NewFromConfig(cfg), tableName)
	if err != nil {
		slog.Error("failed to create ingestion store", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	skill, err := usecase.NewSkillService(store, skillID)
	if err != nil {
		slog.Error("failed to create skill service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(skill)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
