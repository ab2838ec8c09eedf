package main

import "github.com/tonobo/floodsnake/cmd/floodsnake/commands"

func main() {
	commands.Execute()
}
