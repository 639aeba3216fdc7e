package main

import "github.com/releasekit/verconfig/cmd"

func main() {
	cmd.Execute()
}
