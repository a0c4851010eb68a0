// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-21

// Package main is the entry point for the Templi-Bot CLI.
package main

import (
	"github.com/templigh/templi-bot/cmd/templi/commands"
)

func main() {
	commands.Execute()
}
