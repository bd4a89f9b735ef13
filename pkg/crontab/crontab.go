package crontab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FrancoisGib/cron-dsl/pkg/parse"
	"github.com/FrancoisGib/cron-dsl/pkg/registry"
)

// File is the YAML crontab document.
type File struct {
	Schedules []Item `yaml:"schedules"`
}

// Item is one crontab line: a named cron expression plus the command to
// hand to the executor.
type Item struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Command    string `yaml:"command"`
}

// Load reads and parses a crontab file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses crontab YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("crondsl: invalid crontab: %w", err)
	}
	return &f, nil
}

// Save writes the crontab back to disk as YAML.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Registry validates every item's expression and builds a registry in file
// order. The first invalid item aborts with its error.
func (f *File) Registry() (*registry.Registry, error) {
	reg := registry.New()
	for _, item := range f.Schedules {
		s, err := parse.Parse(item.Expression)
		if err != nil {
			return nil, fmt.Errorf("crondsl: schedule %q: %w", item.Name, err)
		}
		reg.AddSchedule(item.Name, s, item.Command)
	}
	return reg, nil
}
