package survey

import (
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	log "github.com/sirupsen/logrus"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// the SSM GetParameters API accepts at most 10 names per call
const getParametersBatchCeiling = 10

// Endpoints fetches the endpoint parameters for one region's services in
// batches of at most 10 names, emitting one progress dot per batch call.
// Services without an endpoint parameter in the region come back in the
// response's invalid list and are skipped; that is not an error.
func (s *Surveyor) Endpoints(ctx context.Context, region string, services []string) ([]catalog.Endpoint, error) {
	names := make([]string, 0, len(services))
	for _, service := range services {
		names = append(names, catalog.ServiceEndpointParameter(region, service))
	}

	var endpoints []catalog.Endpoint
	for batch := range slices.Chunk(names, getParametersBatchCeiling) {
		response, err := s.store.GetParameters(ctx, &ssm.GetParametersInput{
			Names: batch,
		})
		if err != nil {
			return nil, fmt.Errorf("fetching endpoints in %s: %w", region, err)
		}

		fmt.Fprint(s.progress, ".")

		if len(response.InvalidParameters) > 0 {
			log.WithField("region", region).Debugf("no endpoint parameter for %d of %d names", len(response.InvalidParameters), len(batch))
		}

		for _, parameter := range response.Parameters {
			endpoints = append(endpoints, catalog.Endpoint{
				Region:  region,
				Service: catalog.ServiceFromParameter(aws.ToString(parameter.Name)),
				URL:     aws.ToString(parameter.Value),
			})
		}
	}

	return endpoints, nil
}
