package survey

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// globalRegionSentinel appears in the region listing but is not a region
// endpoints can be fetched for.
const globalRegionSentinel = "global"

// Regions resolves the region axis: the override list when one was given
// (no API call), otherwise every region in the public parameter catalog,
// sorted and with the sentinel entry removed.
func (s *Surveyor) Regions(ctx context.Context) ([]string, error) {
	if len(s.cfg.RegionOverrides) > 0 {
		return catalog.NormalizeOverrides(s.cfg.RegionOverrides), nil
	}

	fmt.Fprint(s.progress, "Retrieving all AWS regions... ")

	values, err := s.listParameterValues(ctx, catalog.RegionsPath)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}

	regions := make([]string, 0, len(values))
	for _, value := range values {
		if value != globalRegionSentinel {
			regions = append(regions, value)
		}
	}
	sort.Strings(regions)

	fmt.Fprintf(s.progress, "found %d regions.\n", len(regions))

	return regions, nil
}

// listParameterValues pages through one parameter hierarchy and collects
// the parameter values.
func (s *Surveyor) listParameterValues(ctx context.Context, path string) ([]string, error) {
	var values []string

	paginator := ssm.NewGetParametersByPathPaginator(s.store, &ssm.GetParametersByPathInput{
		Path: aws.String(path),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, parameter := range page.Parameters {
			values = append(values, aws.ToString(parameter.Value))
		}
	}

	return values, nil
}
