package main

import (
	"github.com/NVIDIA/componenthost/pkg/cli"
)

func main() {
	cli.Execute()
}
