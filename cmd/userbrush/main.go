package main

import (
	"fmt"
	"os"

	"userbrush/internal/ui"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = cmdInit(args)
	case "list", "ls":
		err = cmdList(args)
	case "export":
		err = cmdExport(args)
	case "new":
		err = cmdNew(args)
	case "load":
		err = cmdLoad(args)
	case "batch":
		err = cmdBatch(args)
	case "pack":
		err = cmdPack(args)
	case "diff":
		err = cmdDiff(args)
	case "fields":
		err = cmdFields(args)
	case "log":
		err = cmdLog(args)
	case "version", "-v", "--version":
		fmt.Printf("userbrush %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		ui.Error("Unknown command: %s", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`userbrush - Load and package user brush variants

Usage:
  userbrush <command> [options]

Commands:
  init [--catalog PATH]            Write a default config and sample catalog
  list [--variants]                List base brushes (and loaded variants)
  export [--dest DIR]              Export base brush properties for editing
  new <name> <base> [--force]      Scaffold a variant of a base brush
  load <path> [--sketch SUB]       Load one variant folder or archive
  batch [DIR] [--jobs N]           Load every variant in a directory
  pack <path> <out> [--subfolder S] Repackage a variant with its assets
  diff <path>                      Show what a variant changes from its base
  fields                           List configuration-to-descriptor bindings
  log [options]                    Show the operation log
  version                          Show version
  help                             Show this help

Examples:
  userbrush init
  userbrush export
  userbrush new Glowy "Ink"
  userbrush load ~/Brushes/Glowy
  userbrush batch --jobs 4
  userbrush pack ~/Brushes/Glowy Glowy.zip`)
}
