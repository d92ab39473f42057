package dhcp

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
)

type (
	ILeaseService interface {
		ListLeases(ctx context.Context) (leases entities.Leases, err error)
	}

	Handler struct {
		leaseService ILeaseService
		logger       zerolog.Logger
		output       io.Writer
	}
)

func NewHandler(leaseService ILeaseService, logger zerolog.Logger, output io.Writer) *Handler {
	return &Handler{
		leaseService: leaseService,
		logger:       logger,
		output:       output,
	}
}

// PrintLeases fetches dhcp leases and logs one line per lease that passes the filter.
// Online leases are logged at info level, offline ones at debug.
func (h *Handler) PrintLeases(ctx context.Context, filter entities.LeaseFilter) (err error) {
	leases, err := h.leaseService.ListLeases(ctx)
	if err != nil {
		return fmt.Errorf("PrintLeases: %w", err)
	}

	shown := lo.Filter(leases, func(lease entities.Lease, _ int) bool {
		return filter.Match(lease)
	})

	for _, lease := range shown {
		level := zerolog.DebugLevel
		if lease.IsOnline() {
			level = zerolog.InfoLevel
		}
		h.logger.WithLevel(level).Msg(formatLease(lease))

		if filter.Debug {
			h.logger.Debug().
				Any("record", lease).
				Send()
		}
	}

	if filter.Table {
		if _, err = fmt.Fprintln(h.output, formatLeasesToTable(shown)); err != nil {
			return fmt.Errorf("PrintLeases: %w", err)
		}
	}

	log.Debug().
		Int("shown", len(shown)).
		Int("total", len(leases)).
		Msg("PrintLeases: leases listed")

	return nil
}
