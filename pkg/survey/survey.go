package survey

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

// Surveyor walks the public parameter catalog and accumulates endpoint
// triples. It is strictly serial: one region at a time, one batch at a time.
type Surveyor struct {
	store    ParameterStore
	cfg      *catalog.Config
	progress io.Writer
}

// New builds a Surveyor. The progress writer receives the incremental
// human-readable progress stream and is stderr in production; nil discards
// it.
func New(store ParameterStore, cfg *catalog.Config, progress io.Writer) *Surveyor {
	if progress == nil {
		progress = io.Discard
	}
	return &Surveyor{store: store, cfg: cfg, progress: progress}
}

// Run executes the whole survey: resolve the region axis, then per region
// resolve the service axis and fetch the endpoint parameters, folding
// everything into the nested catalog. Any error aborts the run; no partial
// result is returned.
func (s *Surveyor) Run(ctx context.Context) (catalog.Catalog, error) {
	regions, err := s.Regions(ctx)
	if err != nil {
		return nil, err
	}

	var endpoints []catalog.Endpoint
	for _, region := range regions {
		services, err := s.Services(ctx, region)
		if err != nil {
			return nil, err
		}

		if len(s.cfg.ServiceOverrides) == 0 {
			fmt.Fprintf(s.progress, "Retrieving endpoints for %s...", region)
		} else {
			fmt.Fprintf(s.progress, "Retrieving endpoint(s) for %s in %s...", strings.Join(services, ", "), region)
		}

		regionEndpoints, err := s.Endpoints(ctx, region, services)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, regionEndpoints...)

		fmt.Fprintln(s.progress, " done.")
	}

	return catalog.Collect(endpoints), nil
}
