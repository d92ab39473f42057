package constants

const (
	DefaultConfigPath = "~/.pfsense-api.json"
)
