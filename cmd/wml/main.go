package main

import "github.com/go-wml/wml/cmd/wml/cmd"

func main() {
	cmd.Execute()
}
