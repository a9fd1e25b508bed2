// Command merakictl is a command-line client for the Meraki Dashboard API.
package main

import "github.com/lexfrei/go-meraki/internal/cli"

func main() {
	cli.Execute()
}
