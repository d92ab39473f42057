package entities

import (
	"fmt"
	"net"
	"strconv"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
)

// Config is the appliance connection settings loaded from the JSON config file.
type Config struct {
	Username    string `mapstructure:"username" json:"username,omitempty"`
	Password    string `mapstructure:"password" json:"password,omitempty"`
	Port        int    `mapstructure:"port" json:"port" validate:"gte=1,lte=65535"`
	Hostname    string `mapstructure:"hostname" json:"hostname" validate:"required"`
	Mode        string `mapstructure:"mode" json:"mode"`
	JWT         string `mapstructure:"jwt" json:"jwt,omitempty"`
	ClientID    string `mapstructure:"client_id" json:"client_id,omitempty"`       //nolint:tagliatelle // pfsense config format
	ClientToken string `mapstructure:"client_token" json:"client_token,omitempty"` //nolint:tagliatelle // pfsense config format
}

// BaseURL builds the appliance API root, the port is omitted when it is the https default.
func (c Config) BaseURL() string {
	host := c.Hostname
	if c.Port != 0 && c.Port != constants.DefaultPort {
		host = net.JoinHostPort(c.Hostname, strconv.Itoa(c.Port))
	}

	return fmt.Sprintf("%s://%s", constants.HTTPSScheme, host)
}
