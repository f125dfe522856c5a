package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

//go:embed builtin.yaml
var builtinYAML []byte

type document struct {
	Conjunctions []ConjunctionEvent `mapstructure:"conjunctions"`
	Debris       []DebrisObject     `mapstructure:"debris"`
	Analytics    Analytics          `mapstructure:"analytics"`
}

// Builtin returns the reference dataset embedded in the binary.
func Builtin() (*Dataset, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(builtinYAML)); err != nil {
		return nil, fmt.Errorf("read builtin dataset: %w", err)
	}
	return decode(v)
}

// LoadFile reads a dataset document from path. The format follows the file
// extension (yaml, json, toml).
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Dataset, error) {
	var doc document
	if err := v.Unmarshal(&doc, decodeHook()); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return NewDataset(doc.Conjunctions, doc.Debris, doc.Analytics)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	}
}
