package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/pfsense-client/infrastructure"
	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
	"github.com/Fivegen-LLC/pfsense-client/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	insecure   bool
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	flags := new(rootFlags)

	rootCmd := &cobra.Command{
		Use:           "pfsense",
		Short:         "pfSense REST API client",
		Version:       serviceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.SetLogLevel(flags.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", env.Client.ConfigPath, "path to appliance JSON config")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", env.Client.LogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flags.insecure, "insecure", "k", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", constants.DefaultRequestTimeout, "request timeout")

	rootCmd.AddCommand(newCLICmd(flags))

	return rootCmd
}

func newCLICmd(flags *rootFlags) *cobra.Command {
	cliCmd := &cobra.Command{
		Use:   "cli",
		Short: "Appliance commands",
	}

	cliCmd.AddCommand(newListLeasesCmd(flags))

	return cliCmd
}

func newListLeasesCmd(flags *rootFlags) *cobra.Command {
	var filter entities.LeaseFilter

	listLeasesCmd := &cobra.Command{
		Use:   "list_leases",
		Short: "List DHCP leases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kernel, err := buildKernel(flags)
			if err != nil {
				return fmt.Errorf("list_leases: %w", err)
			}

			if err = kernel.InjectDHCPHandler().PrintLeases(cmd.Context(), filter); err != nil {
				return fmt.Errorf("list_leases: %w", err)
			}

			return nil
		},
	}

	listLeasesCmd.Flags().StringVarP(&filter.Find, "find", "f", "", "show only leases containing this text")
	listLeasesCmd.Flags().BoolVarP(&filter.Expired, "expired", "e", false, "include expired leases")
	listLeasesCmd.Flags().BoolVarP(&filter.Debug, "debug", "d", false, "dump full lease record")
	listLeasesCmd.Flags().BoolVarP(&filter.Table, "table", "t", false, "also print leases as table")

	return listLeasesCmd
}

func buildKernel(flags *rootFlags) (kernel *infrastructure.Kernel, err error) {
	kernelEnv := env
	kernelEnv.Client.ConfigPath = flags.configPath

	if kernel, err = infrastructure.Inject(kernelEnv,
		infrastructure.WithHTTPClient(newHTTPClient(flags)),
	); err != nil {
		return kernel, fmt.Errorf("buildKernel: %w", err)
	}

	return kernel, nil
}

func newHTTPClient(flags *rootFlags) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: flags.insecure} //nolint:gosec // appliances often use self-signed certificate

	return &http.Client{
		Transport: transport,
		Timeout:   flags.timeout,
	}
}
