// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/artregistry/configuration"
	"github.com/bitmark-inc/artregistry/flow"
	"github.com/bitmark-inc/artregistry/identity"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "artregistryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultNotaryRate  = 100.0 // notarisations per second
	defaultNotaryBurst = 10
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where vaults and the notary keep their leveldb files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Memory    bool   `gluamapper:"memory" json:"memory"` // ignore directory, nothing persists
}

// RolesType - legal names assigned to each role
type RolesType struct {
	Creator   string   `gluamapper:"creator" json:"creator"`
	Registry  string   `gluamapper:"registry" json:"registry"`
	Buyer     string   `gluamapper:"buyer" json:"buyer"`
	Issuer    string   `gluamapper:"issuer" json:"issuer"`
	Notary    string   `gluamapper:"notary" json:"notary"`
	Observers []string `gluamapper:"observers" json:"observers"`
}

// PartyType - one party hosted by this daemon
type PartyType struct {
	Name string `gluamapper:"name" json:"name"`
	Seed string `gluamapper:"seed" json:"-"` // 32 byte hex ed25519 seed
}

// RetryType - notarisation backoff, durations as Go duration strings
type RetryType struct {
	InitialInterval string `gluamapper:"initial_interval" json:"initial_interval"`
	MaxInterval     string `gluamapper:"max_interval" json:"max_interval"`
	MaxElapsedTime  string `gluamapper:"max_elapsed_time" json:"max_elapsed_time"`
	MaxRetries      uint64 `gluamapper:"max_retries" json:"max_retries"`
}

// NotaryType - admission limit of the double-spend authority
type NotaryType struct {
	RateLimit float64 `gluamapper:"rate_limit" json:"rate_limit"`
	Burst     int     `gluamapper:"burst" json:"burst"`
}

// ScenarioType - the demonstration run after start up
type ScenarioType struct {
	Name       string `gluamapper:"name" json:"name"`
	Price      uint64 `gluamapper:"price" json:"price"`
	Currency   string `gluamapper:"currency" json:"currency"`
	MediaURL   string `gluamapper:"media_url" json:"media_url"`
	Funds      uint64 `gluamapper:"funds" json:"funds"`
	ShortFunds uint64 `gluamapper:"short_funds" json:"short_funds"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory    string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile          string               `gluamapper:"pidfile" json:"pidfile"`
	Database         DatabaseType         `gluamapper:"database" json:"database"`
	Roles            RolesType            `gluamapper:"roles" json:"roles"`
	Parties          []PartyType          `gluamapper:"parties" json:"parties"`
	SessionTimeout   string               `gluamapper:"session_timeout" json:"session_timeout"`
	Retry            RetryType            `gluamapper:"retry" json:"retry"`
	Notary           NotaryType           `gluamapper:"notary" json:"notary"`
	BroadcastWorkers int                  `gluamapper:"broadcast_workers" json:"broadcast_workers"`
	Scenario         ScenarioType         `gluamapper:"scenario" json:"scenario"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`

	flow flow.Config
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	defaults := flow.DefaultConfig()
	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
		},

		SessionTimeout: defaults.SessionTimeout.String(),
		Retry: RetryType{
			InitialInterval: defaults.Retry.InitialInterval.String(),
			MaxInterval:     defaults.Retry.MaxInterval.String(),
			MaxElapsedTime:  defaults.Retry.MaxElapsedTime.String(),
			MaxRetries:      defaults.Retry.MaxRetries,
		},
		Notary: NotaryType{
			RateLimit: defaultNotaryRate,
			Burst:     defaultNotaryBurst,
		},
		BroadcastWorkers: defaults.BroadcastWorkers,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	directories := []*string{&options.Logging.Directory}
	if !options.Database.Memory {
		directories = append(directories, &options.Database.Directory)
	}
	for _, d := range directories {
		if err := configuration.EnsureDirectory(options.DataDirectory, d); nil != err {
			return nil, err
		}
	}

	if err := options.checkRoles(); nil != err {
		return nil, err
	}

	options.flow, err = options.flowConfig()
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// every role must name a party with a seed
func (c *Configuration) checkRoles() error {
	seeds := make(map[string]bool)
	for _, p := range c.Parties {
		if "" == p.Name || "" == p.Seed {
			return fmt.Errorf("Party: %q requires both name and seed", p.Name)
		}
		if seeds[p.Name] {
			return fmt.Errorf("Party: %q is duplicated", p.Name)
		}
		seeds[p.Name] = true
	}

	roles := map[string]string{
		"creator":  c.Roles.Creator,
		"registry": c.Roles.Registry,
		"buyer":    c.Roles.Buyer,
		"issuer":   c.Roles.Issuer,
		"notary":   c.Roles.Notary,
	}
	for role, name := range roles {
		if "" == name {
			return fmt.Errorf("Roles: %s is not assigned", role)
		}
		if !seeds[name] {
			return fmt.Errorf("Roles: %s: %q is not a configured party", role, name)
		}
	}
	for _, name := range c.Roles.Observers {
		if !seeds[name] {
			return fmt.Errorf("Roles: observer: %q is not a configured party", name)
		}
	}
	return nil
}

// convert the text durations
func (c *Configuration) flowConfig() (flow.Config, error) {
	config := flow.Config{
		BroadcastWorkers: c.BroadcastWorkers,
	}
	config.Retry.MaxRetries = c.Retry.MaxRetries

	durations := []struct {
		name  string
		text  string
		value *time.Duration
	}{
		{"session_timeout", c.SessionTimeout, &config.SessionTimeout},
		{"retry.initial_interval", c.Retry.InitialInterval, &config.Retry.InitialInterval},
		{"retry.max_interval", c.Retry.MaxInterval, &config.Retry.MaxInterval},
		{"retry.max_elapsed_time", c.Retry.MaxElapsedTime, &config.Retry.MaxElapsedTime},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(d.text)
		if nil != err {
			return config, fmt.Errorf("Duration: %s: %q is invalid: %s", d.name, d.text, err)
		}
		if value <= 0 {
			return config, fmt.Errorf("Duration: %s: %q must be positive", d.name, d.text)
		}
		*d.value = value
	}
	return config, nil
}

func (c *Configuration) roles() identity.Roles {
	return identity.Roles{
		Creator:   c.Roles.Creator,
		Registry:  c.Roles.Registry,
		Buyer:     c.Roles.Buyer,
		Issuer:    c.Roles.Issuer,
		Notary:    c.Roles.Notary,
		Observers: c.Roles.Observers,
	}
}
