package main

import "github.com/historias-clinicas/seed/cmd/seed/command"

func main() {
	command.Execute()
}
