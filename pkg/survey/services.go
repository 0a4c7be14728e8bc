package survey

import (
	"context"
	"fmt"
	"sort"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// Services resolves the service axis for one region: the override list when
// one was given (no API call), otherwise every service the catalog lists
// under the region, sorted. Invocations are independent; nothing is cached
// across regions.
func (s *Surveyor) Services(ctx context.Context, region string) ([]string, error) {
	if len(s.cfg.ServiceOverrides) > 0 {
		return catalog.NormalizeOverrides(s.cfg.ServiceOverrides), nil
	}

	fmt.Fprintf(s.progress, "Retrieving all services in %s... ", region)

	services, err := s.listParameterValues(ctx, catalog.RegionServicesPath(region))
	if err != nil {
		return nil, fmt.Errorf("listing services in %s: %w", region, err)
	}
	sort.Strings(services)

	fmt.Fprintf(s.progress, "found %d services.\n", len(services))

	return services, nil
}
