package main

import (
	"os"

	"github.com/aiono/blogbuild/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
