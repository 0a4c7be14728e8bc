package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
	"github.com/parkgrove/aws-endpoint-survey/pkg/survey"
)

const version = "1.0.0"

var surveyConfig = catalog.Config{LogLevel: "info"}

var surveyCmd = &cobra.Command{ // nolint:gochecknoglobals
	PersistentPreRunE: configureRun,
	Use:               "aws-endpoint-survey",
	Short:             "Collects AWS service endpoints for all (or specified) services in all (or specified) regions",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runSurvey(cmd)
		if err != nil {
			if fatal, ok := catalog.ClassifyFatal(err); ok {
				return fatal
			}
		}
		return err
	},
}

func runSurvey(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// an unfiltered run walks every region and every service, which is a
	// very large number of API calls
	if !surveyConfig.HasOverrides() {
		if err := confirmFullScan(ctx, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	store, err := survey.NewParameterStore(ctx, surveyConfig.AwsRegion)
	if err != nil {
		return err
	}

	result, err := survey.New(store, &surveyConfig, cmd.ErrOrStderr()).Run(ctx)
	if err != nil {
		return err
	}

	document, err := result.RenderJSON()
	if err != nil {
		return fmt.Errorf("rendering the endpoint catalog: %w", err)
	}

	return writeDocument(cmd, document)
}

func writeDocument(cmd *cobra.Command, document []byte) error {
	if surveyConfig.Output != "" {
		if err := os.WriteFile(surveyConfig.Output, document, 0o644); err != nil {
			return fmt.Errorf("❌ failed to write the endpoint catalog: %v", err)
		}
		log.Infof("✅ Endpoint catalog written to %s", surveyConfig.Output)
		return nil
	}

	_, err := cmd.OutOrStdout().Write(document)
	return err
}

func configureRun(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, readConfigFile())
	return configLogger(cmd, args)
}

func configLogger(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(surveyConfig.LogLevel)
	if err != nil {
		return fmt.Errorf("incorrect log level: %s", surveyConfig.LogLevel)
	}

	log.SetLevel(lvl)
	log.WithField("log-level", lvl).Debug("log level configured")

	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to SURVEY_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

			err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", "SURVEY", envVarSuffix))
			if err != nil {
				log.Fatal(err)
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)

			err := cmd.PersistentFlags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				log.Fatal(err)
			}
		}
	})
}

func init() {
	surveyCmd.SetVersionTemplate("{{.Version}}\n")

	surveyCmd.PersistentFlags().StringSliceVarP(&surveyConfig.RegionOverrides, "regions", "r", nil,
		"overrides the survey with the specified regions, comma-separated")
	surveyCmd.PersistentFlags().StringSliceVarP(&surveyConfig.ServiceOverrides, "services", "s", nil,
		"overrides the survey with the specified services, comma-separated")
	surveyCmd.PersistentFlags().StringVar(&surveyConfig.AwsRegion, "aws-region", "",
		"AWS region the parameter store is queried in (default: the SDK's own resolution)")
	surveyCmd.PersistentFlags().StringVarP(&surveyConfig.Output, "output", "o", "",
		"write the JSON endpoint catalog to this file instead of stdout")
	surveyCmd.PersistentFlags().StringVar(&surveyConfig.LogLevel, "log-level", "info",
		"set log level verbosity (options: debug, info, error, warning)")
	surveyCmd.PersistentFlags().StringVar(&surveyConfig.CfgFile, "config", "", "config file "+
		"(default is ./aws-endpoint-survey.yaml)")
}

func readConfigFile() *viper.Viper {
	v := viper.New()
	if surveyConfig.CfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(surveyConfig.CfgFile)
	} else {
		// Find current directory.
		currentDir := path.Dir("")

		// Search config in current directory with name (without extension).
		v.AddConfigPath(currentDir)
		v.SetConfigType("yaml")
		v.SetConfigName("aws-endpoint-survey")
	}

	// Attempt to read the config file, gracefully ignoring errors
	// caused by a config file not being found. Return an error
	// if we cannot parse the config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Info(err)
		}
	}

	v.SetEnvPrefix("SURVEY")

	// Bind to environment variables
	// Works great for simple config names, but needs help for names
	// like --log-level which we fix in the bindFlags function
	v.AutomaticEnv()

	return v
}

// Execute runs the root command with ctx flowing into every blocking call,
// so an interrupt cancels the prompt and any in-flight API request.
func Execute(ctx context.Context) error {
	return surveyCmd.ExecuteContext(ctx)
}
