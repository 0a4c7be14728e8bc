package catalog

import (
	"testing"

	cmp "github.com/google/go-cmp/cmp"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name      string
		endpoints []Endpoint
		want      Catalog
	}{
		{
			name:      "no endpoints yields an empty catalog",
			endpoints: nil,
			want:      Catalog{},
		},
		{
			name: "groups by region then service",
			endpoints: []Endpoint{
				{Region: "us-east-1", Service: "ec2", URL: "ec2.us-east-1.amazonaws.com"},
				{Region: "us-east-1", Service: "s3", URL: "s3.us-east-1.amazonaws.com"},
				{Region: "eu-west-1", Service: "ec2", URL: "ec2.eu-west-1.amazonaws.com"},
			},
			want: Catalog{
				"eu-west-1": {
					"ec2": "ec2.eu-west-1.amazonaws.com",
				},
				"us-east-1": {
					"ec2": "ec2.us-east-1.amazonaws.com",
					"s3":  "s3.us-east-1.amazonaws.com",
				},
			},
		},
		{
			name: "later triple for the same pair wins",
			endpoints: []Endpoint{
				{Region: "us-east-1", Service: "s3", URL: "old.example.com"},
				{Region: "us-east-1", Service: "s3", URL: "s3.us-east-1.amazonaws.com"},
			},
			want: Catalog{
				"us-east-1": {
					"s3": "s3.us-east-1.amazonaws.com",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(tt.endpoints)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	collected := Catalog{
		"us-east-1": {
			"s3":  "s3.us-east-1.amazonaws.com",
			"ec2": "ec2.us-east-1.amazonaws.com",
		},
		"eu-west-1": {
			"ec2": "ec2.eu-west-1.amazonaws.com",
		},
	}

	want := `{
    "eu-west-1": {
        "ec2": "ec2.eu-west-1.amazonaws.com"
    },
    "us-east-1": {
        "ec2": "ec2.us-east-1.amazonaws.com",
        "s3": "s3.us-east-1.amazonaws.com"
    }
}
`

	got, err := collected.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON returned an unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("RenderJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSONEmptyCatalog(t *testing.T) {
	got, err := Catalog{}.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON returned an unexpected error: %v", err)
	}

	if diff := cmp.Diff("{}\n", string(got)); diff != "" {
		t.Errorf("RenderJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeOverrides(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{
			name:    "already clean list stays as is",
			entries: []string{"us-east-1"},
			want:    []string{"us-east-1"},
		},
		{
			name:    "entries are trimmed and sorted",
			entries: []string{" s3 ", "ec2"},
			want:    []string{"ec2", "s3"},
		},
		{
			name:    "blank segments from stray commas are dropped",
			entries: []string{"", "s3", " "},
			want:    []string{"s3"},
		},
		{
			name:    "duplicates are removed",
			entries: []string{"s3", "ec2", "s3"},
			want:    []string{"ec2", "s3"},
		},
		{
			name:    "all blank collapses to nothing",
			entries: []string{"", "  "},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOverrides(tt.entries)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeOverrides mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHasOverrides(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "no overrides",
			cfg:  Config{},
			want: false,
		},
		{
			name: "regions only",
			cfg:  Config{RegionOverrides: []string{"us-east-1"}},
			want: true,
		},
		{
			name: "services only",
			cfg:  Config{ServiceOverrides: []string{"s3"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasOverrides(); got != tt.want {
				t.Errorf("HasOverrides() = %v, want %v", got, tt.want)
			}
		})
	}
}
