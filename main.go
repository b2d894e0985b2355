package main

import "github.com/lepinkainen/steamstats/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
