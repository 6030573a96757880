package database

import (
	"context"
	"log"

	appconfig "church_giving/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for the payments and campaigns
// tables. DYNAMODB_ENDPOINT points it at DynamoDB Local during development.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		log.Printf("[database][dynamodb] using endpoint=%s", cfg.Endpoint)
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	// Static keys are only forced for local runs; in AWS the default chain
	// (task role, instance profile) applies.
	if cfg.Endpoint != "" || cfg.AccessKeyID != "local" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
