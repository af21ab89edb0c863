package cli

import (
	"errors"
	"io"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/app/drivers/logger"
	fhirPatients "patient-viewer-service/internal/app/services/fhir_spark/patients"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "PV"

// Viper keys. Each is also readable from the environment as PV_<KEY>.
const (
	keyBaseURL  = "base-url"
	keyTimeout  = "timeout"
	keyLogLevel = "log-level"
	keyCount    = "count"
	keySearch   = "search"
	keyPage     = "page"
)

// ErrViewFailed is returned when a screen ends in its failed state. The
// message has already been printed by then.
var ErrViewFailed = errors.New("view failed to load")

type BuildInfo struct {
	Version string
	Tag     string
}

// ClientFactory builds the fetch client once flags and environment are resolved.
type ClientFactory func(baseURL string, timeout time.Duration, log *zap.Logger) contracts.PatientFhirClient

func DefaultClientFactory(baseURL string, timeout time.Duration, log *zap.Logger) contracts.PatientFhirClient {
	return fhirPatients.NewPatientFhirClient(baseURL, log, fhirPatients.WithTimeout(timeout))
}

type app struct {
	v         *viper.Viper
	newClient ClientFactory
	out       io.Writer
	errOut    io.Writer
	log       *zap.Logger
}

func NewRootCommand(build BuildInfo, newClient ClientFactory, out, errOut io.Writer) *cobra.Command {
	internalConfig := config.NewInternalConfig()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	a := &app{v: v, newClient: newClient, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "patient-viewer",
		Short:         "Browse Patient records of a FHIR server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.NewCLILogger(v.GetString(keyLogLevel))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.String(keyBaseURL, internalConfig.FHIR.BaseUrl, "FHIR server base URL")
	flags.Duration(keyTimeout, time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds)*time.Second, "request timeout")
	flags.String(keyLogLevel, "warn", "log level written to stderr")
	for _, key := range []string{keyBaseURL, keyTimeout, keyLogLevel} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(a.listCmd(internalConfig.App.DefaultRetrieveCount))
	rootCmd.AddCommand(a.showCmd())
	rootCmd.AddCommand(versionCmd(build))

	return rootCmd
}

func (a *app) client() contracts.PatientFhirClient {
	return a.newClient(a.v.GetString(keyBaseURL), a.v.GetDuration(keyTimeout), a.log)
}

func versionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("Version: %s\n", build.Version)
			cmd.Printf("Tag: %s\n", build.Tag)
		},
	}
}
