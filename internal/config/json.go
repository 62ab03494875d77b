// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey               string   `json:"token_sign_key"`
		TokenIssuer                string   `json:"token_issuer"`
		TokenDuration              Duration `json:"token_duration"`
		TokenRequireRegisteredUser bool     `json:"token_require_registered_user"`
		LogLevel                   string   `json:"log_level"`
		Version                    string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			URI            string   `json:"uri"`
			User           string   `json:"user"`
			Password       string   `json:"password"`
			Name           string   `json:"name"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:               jsonCfg.App.TokenSignKey,
			TokenIssuer:                jsonCfg.App.TokenIssuer,
			TokenDuration:              time.Duration(jsonCfg.App.TokenDuration),
			TokenRequireRegisteredUser: jsonCfg.App.TokenRequireRegisteredUser,
			LogLevel:                   jsonCfg.App.LogLevel,
			Version:                    jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				URI:            jsonCfg.Storage.DB.URI,
				User:           jsonCfg.Storage.DB.User,
				Password:       jsonCfg.Storage.DB.Password,
				Name:           jsonCfg.Storage.DB.Name,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
