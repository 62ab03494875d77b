// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.resolveAddress()
	config.resolveLegacyNames()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *flag.FlagSet, args []string) *configBuilder {
	flags, err := ParseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// resolveAddress falls back to the bare PORT setting, then to the default
// port, when no explicit HTTP address was configured.
func (cfg *StructuredConfig) resolveAddress() {
	if cfg.Server.HTTPAddress != "" {
		return
	}

	port := cfg.Port
	if port == "" {
		port = DefaultPort
	}
	cfg.Server.HTTPAddress = ":" + port
}

// resolveLegacyNames fills the database credentials and the token sign key
// from DB_USER, DB_PASS and ACCESS_TOKEN_SECRET when they are not set
// otherwise.
func (cfg *StructuredConfig) resolveLegacyNames() {
	if cfg.Storage.DB.User == "" {
		cfg.Storage.DB.User = cfg.DBUser
	}
	if cfg.Storage.DB.Password == "" {
		cfg.Storage.DB.Password = cfg.DBPass
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = cfg.AccessTokenSecret
	}
}

func flagSetArgs() (*flag.FlagSet, []string) {
	return flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:]
}
