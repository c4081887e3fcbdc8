package main

import "github.com/sarchlab/nandctrl/nandctl/cmd"

func main() {
	cmd.Execute()
}
