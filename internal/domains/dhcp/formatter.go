package dhcp

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/pfsense-client/internal/entities"
)

var (
	headerKeys = table.Row{"#", "TYPE", "MAC", "IP", "HOSTNAME", "DESCR", "STATE", "ONLINE"}
)

// formatLease formats lease as TYPE<TAB>MAC<TAB>IP<TAB>HOSTNAME with optional (DESCR) suffix.
func formatLease(lease entities.Lease) string {
	line := strings.Join([]string{
		lease.String(entities.LeaseKeyType),
		lease.String(entities.LeaseKeyMAC),
		lease.String(entities.LeaseKeyIP),
		lease.String(entities.LeaseKeyHostname),
	}, "\t")

	if descr := lease.String(entities.LeaseKeyDescr); lo.IsNotEmpty(descr) {
		line = fmt.Sprintf("%s (%s)", line, descr)
	}

	return line
}

// formatLeasesToTable formats leases to pretty table.
func formatLeasesToTable(leases entities.Leases) string {
	t := table.NewWriter()
	t.AppendHeader(headerKeys)

	for i, lease := range leases {
		t.AppendRow(table.Row{
			i + 1,
			lease.String(entities.LeaseKeyType),
			lease.String(entities.LeaseKeyMAC),
			lease.String(entities.LeaseKeyIP),
			lease.String(entities.LeaseKeyHostname),
			lease.String(entities.LeaseKeyDescr),
			lease.String(entities.LeaseKeyState),
			lease.IsOnline(),
		})
	}

	return t.Render()
}
