package main

import "github.com/nuellacreatives/ledger-api/cmd/salesctl/commands"

func main() {
	commands.Execute()
}
