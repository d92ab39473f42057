package infrastructure

import (
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/apiclient"
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/config"
	"github.com/Fivegen-LLC/pfsense-client/internal/domains/dhcp"
)

func (k *Kernel) InjectConfigService() *config.Service {
	k.configServiceOnce.Do(func() {
		k.configService = config.NewService()
	})

	return k.configService
}

func (k *Kernel) InjectAPIClient() *apiclient.Service {
	k.apiClientServiceOnce.Do(func() {
		var options []apiclient.Option
		if k.httpClient != nil {
			options = append(options, apiclient.WithHTTPClient(k.httpClient))
		}

		k.apiClientService = apiclient.NewService(k.cfg, options...)
	})

	return k.apiClientService
}

func (k *Kernel) InjectDHCPService() *dhcp.Service {
	k.dhcpServiceOnce.Do(func() {
		k.dhcpService = dhcp.NewService(
			k.InjectAPIClient(),
		)
	})

	return k.dhcpService
}
