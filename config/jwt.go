package config

// Jwt signing settings. Expiry values are in minutes.
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"`
}
