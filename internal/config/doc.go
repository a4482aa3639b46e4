// Package config loads the settings of the vimode binary.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. A TOML file (usually ~/.config/vimode/config.toml)
//  2. VIMODE_* environment variables, falling back to an optional
//     dotenv file (see WithEnvFile)
//  3. Command-line flags
//
// Example file:
//
//	log_level = "debug"
//	log_file = "/tmp/vimode.log"
//	keymap = "~/.config/vimode/keys.toml"
//	script = "~/.config/vimode/init.lua"
//	start_mode = "insert"
//	watch = true
package config
