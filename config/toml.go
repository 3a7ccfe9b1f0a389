package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const DefaultConfigName = "config.toml"

var configTemplate *template.Template

const DefaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

DataDir = "{{ .DataDir }}"
LogLevel = "{{ .LogLevel }}"
LogPath = "{{ .LogPath }}"
LogAge = {{ .LogAge }}

MaxCallDepth = {{ .MaxCallDepth }}
ModuleCacheSize = {{ .ModuleCacheSize }}
ForeignReadCacheSize = {{ .ForeignReadCacheSize }}

BigFloatPrecision = {{ .BigFloatPrecision }}
MaxConversionExponent = {{ .MaxConversionExponent }}
ReservedKeyPrefix = "{{ .ReservedKeyPrefix }}"

[gas]
{{ range $name, $cost := gasTable .Gas }}{{ $name }} = {{ $cost }}
{{ end }}`

func init() {
	configTemplate = template.Must(template.New("configFileTemplate").Funcs(template.FuncMap{
		"gasTable": gasTable,
	}).Parse(DefaultConfigTemplate))
}

func gasTable(gas GasSchedule) map[string]uint64 {
	table := make(map[string]uint64)
	for name, v := range gasFields(&gas) {
		table[name] = v.Uint()
	}
	return table
}

// WriteVMConfig renders cfg as TOML into configDirPath/configName.
func WriteVMConfig(configDirPath string, configName string, cfg VMConfig, mode os.FileMode) error {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}
	configPath := filepath.Join(configDirPath, configName)
	return ioutil.WriteFile(configPath, buffer.Bytes(), mode)
}

// LoadVMConfig reads dir/config.toml over the defaults. A missing file
// yields the defaults with DataDir set to dir.
func LoadVMConfig(dir string) (VMConfig, error) {
	cfg := DefaultVMConfig()
	cfg.DataDir = dir

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config in %s", dir)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
