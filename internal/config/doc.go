// Package config loads the settings of the document core from TOML.
//
// A settings file looks like:
//
//	tab_width   = 4
//	font_size   = 12
//	cell_width  = 1.0
//	line_height = 1.0
//	log_level   = "info"
//
//	[theme]
//	foreground = "#d0d0d0"
//	background = "black"
//	keyword    = "#c678dd"
//
// Keys that are not set keep their defaults. Unknown keys are rejected.
// Watch reloads the file whenever it changes on disk.
package config
