/*
	Copyright 2025 Rohan Saxena
*/

package main

import "github.com/rsaxena/tirepace/cmd"

func main() {
	cmd.Execute()
}
