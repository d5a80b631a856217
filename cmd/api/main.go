package main

import (
	"fmt"
	"os"

	"github.com/PauloHFS/pagelinks/internal/cmd"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if len(os.Args) < 2 {
		cmd.RunServer()
		return
	}

	switch os.Args[1] {
	case "server":
		cmd.RunServer()
	case "migrate":
		exitOnError(cmd.RunMigrate())
	case "seed":
		exitOnError(cmd.RunSeed(os.Args[2:]))
	case "links":
		exitOnError(cmd.RunLinks(os.Stdout, os.Args[2:]))
	case "help":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

// exitOnError encerra o processo com status 1 quando o comando falha.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func showHelp() {
	fmt.Println("pagelinks - pagination link service")
	fmt.Println("Usage: ./pagelinks [command] [args]")
	fmt.Println("\nAvailable commands:")
	fmt.Println("  server       Start the web server (default)")
	fmt.Println("  migrate      Run database migrations")
	fmt.Println("  seed         Run migrations and seed the catalog (args: [items])")
	fmt.Println("  links        Print a pagination bar (args: <pages> <page> [max_links])")
	fmt.Println("  help         Show this help message")
}
