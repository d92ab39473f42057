package environment

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
)

type Environment struct {
	Client
}

type Client struct {
	ConfigPath  string
	LogfilePath string
	LogLevel    string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.AutomaticEnv()

	// client settings
	v.SetEnvPrefix("PFSENSE")
	e.Client.ConfigPath = v.GetString("CONFIG")
	if lo.IsEmpty(e.Client.ConfigPath) {
		e.Client.ConfigPath = constants.DefaultConfigPath
	}

	// logging settings
	v.SetEnvPrefix("LOG")
	e.Client.LogfilePath = v.GetString("FILE")
	e.Client.LogLevel = v.GetString("LEVEL")
	if lo.IsEmpty(e.Client.LogLevel) {
		e.Client.LogLevel = "debug"
	}

	return e, nil
}
