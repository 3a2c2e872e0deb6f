package main

import "github.com/yskmt/cantus/cmd"

func main() {
	cmd.Execute()
}
