package config

import _ "embed"

//go:embed networks.yaml
var DefaultNetworksYaml string

//go:embed .env.example
var EnvExample string

// Files written by `solo init`, relative to the project root
var InitFiles = map[string]string{
	"config/networks.yaml": DefaultNetworksYaml,
	".env.example":         EnvExample,
}
