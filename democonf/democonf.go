// Package democonf loads the YAML configuration consumed by the demo
// program. A missing or unreadable file falls back to defaults; an
// invalid one is an error.
package democonf

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/skiplist"
)

// default values
const (
	SKIPLIST_LVL_MAX = 16
	SKIPLIST_P       = 0.5
	VECTOR_CAPACITY  = 8
)

var defaultWords = []string{"Answer", "Lucky", "Jordan", "Atlas", "Comet"}

type Config struct {
	SkiplistLevelMax int      `yaml:"skiplist_level_max"`
	SkiplistP        float64  `yaml:"skiplist_p"`
	VectorCapacity   int      `yaml:"vector_capacity"`
	Words            []string `yaml:"words"`
}

func GetDefault() Config {
	var config Config
	config.SkiplistLevelMax = SKIPLIST_LVL_MAX
	config.SkiplistP = SKIPLIST_P
	config.VectorCapacity = VECTOR_CAPACITY
	config.Words = append([]string(nil), defaultWords...)
	return config
}

// LoadConfig reads the config at filePath. When the file cannot be
// read or parsed the defaults are used and a log line notes the
// fallback; a readable but invalid configuration is returned as an
// error.
func LoadConfig(filePath string) (*Config, error) {
	config := GetDefault()

	configData, err := os.ReadFile(filePath)
	if err != nil {
		log.Println("Config file at", filePath, "is not available for reading. Using defaults")
	} else {
		err = yaml.UnmarshalStrict(configData, &config)
		if err != nil {
			log.Println("Config file at", filePath, "is not valid. Using defaults. Error is:\n", err)
			config = GetDefault()
		} else {
			err := config.validate()
			if err != nil {
				return nil, err
			}
		}
	}

	return &config, nil
}

func (conf *Config) validate() error {
	err := skiplist.ValidateParams(conf.SkiplistLevelMax, conf.SkiplistP)
	if err != nil {
		return fmt.Errorf("skiplist config: %s", err.Error())
	}

	if conf.VectorCapacity < 0 {
		return fmt.Errorf("vector config: capacity must not be negative, but %d was given", conf.VectorCapacity)
	}

	if len(conf.Words) == 0 {
		return fmt.Errorf("demo config: at least one word must be given")
	}

	return nil
}

// Dump writes the configuration to filePath as YAML.
func (conf Config) Dump(filePath string) error {
	configData, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, configData, 0644)
}
