package catalog

import (
	"testing"

	cmp "github.com/google/go-cmp/cmp"
)

func TestParameterPaths(t *testing.T) {
	if got, want := RegionServicesPath("eu-west-1"), "/aws/service/global-infrastructure/regions/eu-west-1/services"; got != want {
		t.Errorf("RegionServicesPath = %q, want %q", got, want)
	}

	if got, want := ServiceEndpointParameter("eu-west-1", "s3"), "/aws/service/global-infrastructure/regions/eu-west-1/services/s3/endpoint"; got != want {
		t.Errorf("ServiceEndpointParameter = %q, want %q", got, want)
	}
}

func TestServiceFromParameter(t *testing.T) {
	tests := []struct {
		name      string
		parameter string
		want      string
	}{
		{
			name:      "endpoint parameter name",
			parameter: "/aws/service/global-infrastructure/regions/us-east-1/services/s3/endpoint",
			want:      "s3",
		},
		{
			name:      "round trips the path builder",
			parameter: ServiceEndpointParameter("ap-south-1", "execute-api"),
			want:      "execute-api",
		},
		{
			name:      "two segments",
			parameter: "s3/endpoint",
			want:      "s3",
		},
		{
			name:      "name without segments",
			parameter: "endpoint",
			want:      "",
		},
		{
			name:      "empty name",
			parameter: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServiceFromParameter(tt.parameter)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ServiceFromParameter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
