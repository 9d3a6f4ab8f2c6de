package config

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/labstack/gommon/log"
)

const (
	ParamsPrefix = "/companydata/prod/"
	ParamsRegion = "us-east-2"
)

// ParameterStore is the part of the SSM client used to load the environment.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, in *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// LoadProdEnv exports every parameter under ParamsPrefix as an environment
// variable named after the rest of its path.
func LoadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(ParamsRegion))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}
	return exportParameters(ctx, ssm.NewFromConfig(cfg), ParamsPrefix)
}

func exportParameters(ctx context.Context, client ParameterStore, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			name := aws.ToString(param.Name)
			if len(name) <= len(prefix) {
				continue
			}
			if err := os.Setenv(name[len(prefix):], aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable: %w", err)
			}
			count++
		}
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}
