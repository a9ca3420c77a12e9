// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"
)

const envPrefix = "GOOPTION_"

const (
	StoreBackendPebble = "pebble"
	StoreBackendMemory = "memory"
)

type Config struct {
	Conf  ConfConfig  `koanf:"conf"`
	Log   LogConfig   `koanf:"log"`
	Store StoreConfig `koanf:"store"`
	Chain ChainConfig `koanf:"chain"`
}

var ConfigDefault = Config{
	Conf:  ConfConfigDefault,
	Log:   LogConfigDefault,
	Store: StoreConfigDefault,
	Chain: ChainConfigDefault,
}

func ConfigAddOptions(f *flag.FlagSet) {
	ConfConfigAddOptions("conf", f)
	LogConfigAddOptions("log", f)
	StoreConfigAddOptions("store", f)
	ChainConfigAddOptions("chain", f)
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

type ConfConfig struct {
	Dump bool   `koanf:"dump"`
	File string `koanf:"file"`
}

var ConfConfigDefault = ConfConfig{
	Dump: false,
	File: "",
}

func ConfConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".dump", ConfConfigDefault.Dump, "print out currently active configuration and exit")
	f.String(prefix+".file", ConfConfigDefault.File, "name of JSON configuration file")
}

type LogConfig struct {
	Level string            `koanf:"level"`
	Type  string            `koanf:"type"`
	File  FileLoggingConfig `koanf:"file"`
}

var LogConfigDefault = LogConfig{
	Level: "info",
	Type:  "text",
	File:  FileLoggingConfigDefault,
}

func LogConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".level", LogConfigDefault.Level, "log level (debug, info, warn or error)")
	f.String(prefix+".type", LogConfigDefault.Type, "log type (text or json)")
	FileLoggingConfigAddOptions(prefix+".file", f)
}

func (c *LogConfig) Validate() error {
	if _, err := parseLogLevel(c.Level); err != nil {
		return err
	}
	switch c.Type {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log type: %s", c.Type)
	}
	return nil
}

type FileLoggingConfig struct {
	Enable     bool   `koanf:"enable"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max-size"`
	MaxAge     int    `koanf:"max-age"`
	MaxBackups int    `koanf:"max-backups"`
	LocalTime  bool   `koanf:"local-time"`
	Compress   bool   `koanf:"compress"`
}

var FileLoggingConfigDefault = FileLoggingConfig{
	Enable:     false,
	File:       "gooption.log",
	MaxSize:    5,
	MaxAge:     0,
	MaxBackups: 20,
	LocalTime:  false,
	Compress:   true,
}

func FileLoggingConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enable", FileLoggingConfigDefault.Enable, "enable logging to file")
	f.String(prefix+".file", FileLoggingConfigDefault.File, "path to log file")
	f.Int(prefix+".max-size", FileLoggingConfigDefault.MaxSize, "log file size in Mb that will trigger log file rotation (0 = trigger disabled)")
	f.Int(prefix+".max-age", FileLoggingConfigDefault.MaxAge, "maximum number of days to retain old log files (0 = no limit)")
	f.Int(prefix+".max-backups", FileLoggingConfigDefault.MaxBackups, "maximum number of old log files to retain (0 = no limit)")
	f.Bool(prefix+".local-time", FileLoggingConfigDefault.LocalTime, "use local time in old log filename timestamps")
	f.Bool(prefix+".compress", FileLoggingConfigDefault.Compress, "enable compression of old log files")
}

type StoreConfig struct {
	Backend string `koanf:"backend"`
	Dir     string `koanf:"dir"`
}

var StoreConfigDefault = StoreConfig{
	Backend: StoreBackendPebble,
	Dir:     "gooption-data",
}

func StoreConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".backend", StoreConfigDefault.Backend, "state store backend (pebble or memory)")
	f.String(prefix+".dir", StoreConfigDefault.Dir, "directory of the pebble state store")
}

func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case StoreBackendPebble:
		if c.Dir == "" {
			return errors.New("store.dir must be set for the pebble backend")
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("invalid store backend: %s", c.Backend)
	}
	return nil
}

type ChainConfig struct {
	Id              string `koanf:"id"`
	Bech32Prefix    string `koanf:"bech32-prefix"`
	ContractAddress string `koanf:"contract-address"`
}

var ChainConfigDefault = ChainConfig{
	Id:              "gooption-local",
	Bech32Prefix:    "",
	ContractAddress: "",
}

func ChainConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".id", ChainConfigDefault.Id, "chain ID reported to the contract")
	f.String(prefix+".bech32-prefix", ChainConfigDefault.Bech32Prefix, "require bech32 addresses with this prefix")
	f.String(prefix+".contract-address", ChainConfigDefault.ContractAddress, "address holding escrowed funds")
}

// envKey maps GOOPTION_LOG_FILE_MAX__SIZE to log.file.max-size
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	key = strings.ReplaceAll(key, "__", "-")
	return strings.ReplaceAll(key, "_", ".")
}

// ParseConfig layers flag defaults, the optional config file, the environment and
// explicitly set flags, in increasing order of precedence. It returns the
// configuration and the remaining positional arguments
func ParseConfig(args []string) (*Config, []string, error) {
	f := flag.NewFlagSet("gooption", flag.ContinueOnError)
	f.SetInterspersed(false)
	ConfigAddOptions(f)
	if err := f.Parse(args); err != nil {
		return nil, nil, err
	}
	k := koanf.New(".")
	// Defaults for every flag
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, nil, fmt.Errorf("error loading flags: %w", err)
	}
	if confFile := k.String("conf.file"); confFile != "" {
		if err := k.Load(file.Provider(confFile), json.Parser()); err != nil {
			return nil, nil, fmt.Errorf("error loading config file %s: %w", confFile, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, nil, fmt.Errorf("error loading environment: %w", err)
	}
	// Keys exist now, so only flags set on the command line are applied again
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, nil, fmt.Errorf("error loading flags: %w", err)
	}
	var config Config
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &config,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	// Unknown keys in the config file or environment are an error
	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig}); err != nil {
		return nil, nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	return &config, f.Args(), nil
}

// DumpConfig renders the active configuration as JSON
func DumpConfig(config *Config) ([]byte, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(configMap(config), "."), nil); err != nil {
		return nil, err
	}
	// Don't keep dumping when the output is used as a config file
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"conf.dump": false,
	}, "."), nil); err != nil {
		return nil, err
	}
	return k.Marshal(json.Parser())
}

func configMap(c *Config) map[string]interface{} {
	return map[string]interface{}{
		"conf.dump":              c.Conf.Dump,
		"conf.file":              c.Conf.File,
		"log.level":              c.Log.Level,
		"log.type":               c.Log.Type,
		"log.file.enable":        c.Log.File.Enable,
		"log.file.file":          c.Log.File.File,
		"log.file.max-size":      c.Log.File.MaxSize,
		"log.file.max-age":       c.Log.File.MaxAge,
		"log.file.max-backups":   c.Log.File.MaxBackups,
		"log.file.local-time":    c.Log.File.LocalTime,
		"log.file.compress":      c.Log.File.Compress,
		"store.backend":          c.Store.Backend,
		"store.dir":              c.Store.Dir,
		"chain.id":               c.Chain.Id,
		"chain.bech32-prefix":    c.Chain.Bech32Prefix,
		"chain.contract-address": c.Chain.ContractAddress,
	}
}
