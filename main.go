package main

import "panelstat/pkg/commands"

func main() {
	commands.Execute()
}
