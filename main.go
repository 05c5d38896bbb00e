package main

import "github.com/hyprveil/hyprveil/cmd"

func main() {
	cmd.Execute()
}
