// Package config declares the padwatch command line.
package config

import "github.com/Alia5/padwatch/internal/cmd"

// CLI is the root kong grammar.
type CLI struct {
	Config string `help:"Defaults file to load (json, yaml or toml)" type:"path" env:"PADWATCH_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Profiles  cmd.Profiles      `cmd:"" help:"List the built-in device profiles"`
	Controls  cmd.Controls      `cmd:"" help:"Describe the controls of a profile"`
	Devices   cmd.Devices       `cmd:"" help:"List the gamepads plugged in right now"`
	Monitor   cmd.Monitor       `cmd:"" help:"Log the inputs of a gamepad until interrupted"`
	Debug     cmd.Debug         `cmd:"" help:"Print the raw events of a gamepad"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Manage defaults files"`
}

type Log struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"PADWATCH_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" env:"PADWATCH_LOG_FILE"`
	Format    string `help:"Console log format" enum:"auto,text,json" default:"auto" env:"PADWATCH_LOG_FORMAT"`
	EventFile string `help:"Write the raw events of the debug command to this file instead of stdout" env:"PADWATCH_LOG_EVENT_FILE"`
}
