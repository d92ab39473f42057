package constants

import (
	"time"
)

const (
	DefaultPort = 443
	DefaultMode = "local"
	HTTPSScheme = "https"
)

const (
	DHCPLeasePath = "/api/v1/services/dhcpd/lease"
)

const (
	LeaseStateExpired = "expired"
)

const (
	LogFilePerm = 0644
	LogDirPerm  = 0755
)

const (
	DefaultRequestTimeout = 30 * time.Second
)
