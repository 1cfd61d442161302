package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

type Config struct {
	Region    string     `yaml:"region"`
	Endpoints []Endpoint `yaml:"endpoints"`
	S3        *S3        `yaml:"s3"`
}

type Endpoint struct {
	Service      string `yaml:"service"`
	Region       string `yaml:"region"`
	URL          string `yaml:"url"`
	Scheme       string `yaml:"scheme"`
	HostnameExpr string `yaml:"hostname-expr"`
}

type S3 struct {
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
}

func Parse(r io.Reader) (*Config, error) {
	var config Config

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func Load(path string) (*Config, error) {
	configFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file at path %s: %w", path, err)
	}
	defer configFile.Close()

	config, err := Parse(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file at path %s: %w", path, err)
	}

	return config, nil
}
