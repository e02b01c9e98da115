package main

import "github.com/lundeen06/magtorq-designer/cmd"

func main() {
	cmd.Execute()
}
