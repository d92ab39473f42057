package dhcp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
)

type (
	IAPIClient interface {
		Get(ctx context.Context, path string) (envelope entities.Envelope, err error)
	}

	Service struct {
		apiClient IAPIClient
	}
)

func NewService(apiClient IAPIClient) *Service {
	return &Service{
		apiClient: apiClient,
	}
}

// FetchLeaseEnvelope requests dhcp leases and returns the envelope as is.
func (s *Service) FetchLeaseEnvelope(ctx context.Context) (envelope entities.Envelope, err error) {
	if envelope, err = s.apiClient.Get(ctx, constants.DHCPLeasePath); err != nil {
		return envelope, fmt.Errorf("FetchLeaseEnvelope: %w", err)
	}

	return envelope, nil
}

// ListLeases returns dhcp leases in the order the appliance reports them.
func (s *Service) ListLeases(ctx context.Context) (leases entities.Leases, err error) {
	envelope, err := s.FetchLeaseEnvelope(ctx)
	if err != nil {
		return leases, fmt.Errorf("ListLeases: %w", err)
	}

	if envelope.IsError() {
		log.Warn().
			Int("code", envelope.Code).
			Str("status", envelope.Status).
			Str("message", envelope.Message).
			Msg("ListLeases: appliance returned error envelope")
	}

	if leases, err = envelope.Leases(); err != nil {
		return leases, fmt.Errorf("ListLeases: %w", err)
	}

	return leases, nil
}
