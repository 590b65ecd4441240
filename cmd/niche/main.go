// Command niche is the nichefinder CLI and HTTP server.
package main

import "github.com/karolswdev/nichefinder/cmd"

func main() {
	cmd.Execute()
}
