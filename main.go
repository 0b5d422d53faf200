package main

import "github.com/bankterm/bankterm/cmd"

func main() {
	cmd.Execute()
}
