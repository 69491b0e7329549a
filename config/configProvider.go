package config

import (
	"github.com/aiono/blogbuild/common/maps"
)

// Provider provides the configuration settings for a build.
type Provider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetParams(key string) maps.Params
	GetStringSlice(key string) []string
	Get(key string) any
	Set(key string, value any)
	SetDefaults(params maps.Params)
	IsSet(key string) bool
}
