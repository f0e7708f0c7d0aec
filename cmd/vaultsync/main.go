package main

import "vaultsync/cmd/vaultsync/cmd"

func main() {
	cmd.Execute()
}
