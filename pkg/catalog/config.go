package catalog

// Config carries the flag, environment and config-file settings through the
// call chain. There is deliberately no package-global configuration.
type Config struct {
	LogLevel  string
	CfgFile   string
	AwsRegion string
	Output    string

	RegionOverrides  []string
	ServiceOverrides []string
}

// HasOverrides reports whether either axis of the survey is narrowed by the
// user. A narrowed run skips the full-scan confirmation.
func (c *Config) HasOverrides() bool {
	return len(c.RegionOverrides) > 0 || len(c.ServiceOverrides) > 0
}
