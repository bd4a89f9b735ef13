// Package crontab defines the YAML crontab file format: a list of named
// cron expressions with command payloads, loadable into a registry.
package crontab
