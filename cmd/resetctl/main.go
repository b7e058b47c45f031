package main

import "github.com/SscSPs/freelanceos/cmd/resetctl/commands"

func main() {
	commands.Execute()
}
