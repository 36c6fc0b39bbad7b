package main

import "btccodec/cmd"

func main() {
	cmd.Execute()
}
