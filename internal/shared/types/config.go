package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile    string   `json:"profile" yaml:"profile" toml:"profile"`
	Region     string   `json:"region" yaml:"region" toml:"region"`
	Bucket     string   `json:"bucket" yaml:"bucket" toml:"bucket"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	DryRun     bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
}

// EnvConfig é a configuração lida do ambiente de execução (função ou shell).
type EnvConfig struct {
	BucketName string `envconfig:"BUCKET_NAME"`
	Region     string `envconfig:"AWS_REGION"`
	Profile    string `envconfig:"AWS_PROFILE"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}
