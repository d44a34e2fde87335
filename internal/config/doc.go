// Package config provides user configuration management for spinbutton.
//
// This package manages a YAML-based configuration file holding named widget
// profiles and application preferences. The file follows OS-specific
// conventions for its location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/spinbutton/config.yaml or $HOME/.config/spinbutton/config.yaml
//   - macOS: $HOME/.config/spinbutton/config.yaml
//   - Windows: %LOCALAPPDATA%\spinbutton\config.yaml
//
// # File Format
//
//	version: 1
//	profiles:
//	  volume:
//	    min: 0
//	    max: "11"
//	    step: 0.5
//	    name: volume
//	preferences:
//	  log_level: debug
//	  log_file: /tmp/spinbutton.log
//
// Bounds and step keep the scalar that was written, number or string, and are
// resolved with the widget's fallbacks (1, 100, 1) when a profile is used.
//
// # Usage Example
//
//	registry, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	registry.SetProfile("volume", &config.Profile{Min: 0, Max: 11})
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// File reads and writes are serialised by a package mutex; writes go to a
// temporary file that is renamed over the target.
package config
