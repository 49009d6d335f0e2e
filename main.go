package main

import "github.com/JVenberg/CodespaceInfoCLI/cmd"

func main() {
	cmd.Execute()
}
