// Package commands implements the selectdemo CLI.
//
// Commands:
//
//	selectdemo sdl    pick items in an SDL window, then confirm the selection
//	selectdemo term   pick items in the terminal
//
// Items come from --items or a TOML catalog (--catalog). The initial
// selection is given by --selected, matched against item ids.
package commands
