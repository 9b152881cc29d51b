package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	App    *App       `json:"app" yaml:"app"`
	Redis  *Redis     `json:"redis" yaml:"redis"`
	MySQL  *MySQL     `json:"mysql" yaml:"mysql"`
	Jwt    *Jwt       `json:"jwt" yaml:"jwt"`
	Oss    *OssConfig `json:"oss" yaml:"oss"`
	Mail   *Mail      `json:"mail" yaml:"mail"`
	Server *Server    `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("failed to parse %s: %v", filename, err))
	}

	return &conf
}

// Debug reports whether the app runs in debug mode.
func (c *Config) Debug() bool {
	return c.App.Debug
}
