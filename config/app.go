package config

type App struct {
	Env         string `json:"env" yaml:"env"`
	Debug       bool   `json:"debug" yaml:"debug"`
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
}
