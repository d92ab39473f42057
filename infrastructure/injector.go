package infrastructure

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/pfsense-client/internal/domains/apiclient"
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/config"
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/dhcp"
	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
	"github.com/Fivegen-LLC/pfsense-client/internal/environment"
)

// Kernel owns services built for one appliance config.
type Kernel struct {
	env environment.Environment
	cfg entities.Config

	httpClient *http.Client
	output     io.Writer

	configService     *config.Service
	configServiceOnce sync.Once

	apiClientService     *apiclient.Service
	apiClientServiceOnce sync.Once

	dhcpService     *dhcp.Service
	dhcpServiceOnce sync.Once
}

type KernelOption func(k *Kernel)

// WithHTTPClient sets transport session shared by api calls.
func WithHTTPClient(httpClient *http.Client) KernelOption {
	return func(k *Kernel) {
		k.httpClient = httpClient
	}
}

// WithOutput sets writer for table output, stdout by default.
func WithOutput(output io.Writer) KernelOption {
	return func(k *Kernel) {
		k.output = output
	}
}

// Inject loads appliance config and prepares kernel for building services.
func Inject(env environment.Environment, options ...KernelOption) (k *Kernel, err error) {
	k = &Kernel{
		env:    env,
		output: os.Stdout,
	}
	for _, option := range options {
		option(k)
	}

	if k.cfg, err = k.InjectConfigService().LoadConfig(k.env.Client.ConfigPath); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

func (k *Kernel) Config() entities.Config {
	return k.cfg
}

func (k *Kernel) InjectDHCPHandler() *dhcp.Handler {
	return dhcp.NewHandler(
		k.InjectDHCPService(),
		log.Logger,
		k.output,
	)
}
