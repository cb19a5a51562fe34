package main

import "github.com/cloudphoenix/phoenix-api/cmd"

func main() {
	cmd.Execute()
}
