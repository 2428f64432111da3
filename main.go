package main

import "github.com/papapumpkin/affinity/cmd"

func main() {
	cmd.Execute()
}
