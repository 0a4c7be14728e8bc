package survey

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	log "github.com/sirupsen/logrus"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// awsRetryMaxAttempts bounds the SDK's standard-mode retryer. Transient
// throttling on the public parameter store is expected during a full scan
// and is handled entirely by the SDK.
const awsRetryMaxAttempts = 10

// ParameterStore is the slice of the SSM API the survey consumes: paginated
// listing by path and batch get by name. *ssm.Client satisfies it, tests
// inject fakes.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

var _ ParameterStore = (*ssm.Client)(nil)

func initAwsConfig(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), awsRetryMaxAttempts)
		}),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

// NewParameterStore builds the one SSM client used for the whole run. The
// credential chain is probed up front so a run never reaches its first
// network call without resolvable credentials.
func NewParameterStore(ctx context.Context, region string) (ParameterStore, error) {
	cfg, err := initAwsConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, catalog.CredentialsError(err)
	}
	log.WithField("region", cfg.Region).Debug("✅ AWS config loaded, credentials resolved")

	return ssm.NewFromConfig(cfg), nil
}
