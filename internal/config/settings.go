package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// MaskSettings represents mask generation preferences.
type MaskSettings struct {
	Kind           string `json:"kind" yaml:"Kind"`
	Channels       int    `json:"channels" yaml:"Channels"`
	Preview        bool   `json:"preview" yaml:"Preview"`
	LargestSegment bool   `json:"largest-segment" yaml:"LargestSegment"`
	SmoothContours bool   `json:"smooth-contours" yaml:"SmoothContours"`
	FillHoles      bool   `json:"fill-holes" yaml:"FillHoles"`
}

// ThumbSettings represents image output preferences.
type ThumbSettings struct {
	Vips    bool `json:"vips" yaml:"Vips"`
	Quality int  `json:"quality" yaml:"Quality"`
}

// Settings represents user settings.
type Settings struct {
	Mask  MaskSettings  `json:"mask" yaml:"Mask"`
	Thumb ThumbSettings `json:"thumb" yaml:"Thumb"`
}

// NewSettings creates default user settings.
func NewSettings() *Settings {
	return &Settings{
		Mask: MaskSettings{
			Kind:     "",
			Channels: 1,
		},
		Thumb: ThumbSettings{
			Quality: 92,
		},
	}
}

// Load user settings from a yaml file.
func (s *Settings) Load(fileName string) error {
	if !fs.FileExists(fileName) {
		return fmt.Errorf("settings file not found: %s", sanitize.Log(fileName))
	}

	yamlConfig, err := os.ReadFile(fileName)

	if err != nil {
		return err
	}

	return yaml.Unmarshal(yamlConfig, s)
}

// Save user settings to a yaml file.
func (s *Settings) Save(fileName string) error {
	data, err := yaml.Marshal(s)

	if err != nil {
		return err
	}

	return os.WriteFile(fileName, data, fs.ModeFile)
}

// initSettings loads the user settings or creates the file with defaults.
func (c *Config) initSettings() {
	c.once.Do(func() {
		c.settings = NewSettings()

		fileName := c.SettingsFile()

		if err := c.settings.Load(fileName); err == nil {
			log.Debugf("config: loaded settings from %s", sanitize.Log(fileName))
		} else if err := c.settings.Save(fileName); err != nil {
			log.Errorf("config: %s (save settings)", err)
		} else {
			log.Infof("config: created settings file %s", sanitize.Log(fileName))
		}
	})
}

// Settings returns the current user settings.
func (c *Config) Settings() *Settings {
	c.initSettings()

	return c.settings
}
