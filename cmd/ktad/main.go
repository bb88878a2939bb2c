package main

import (
	"github.com/NVIDIA/k8s-test-api/pkg/cli"
)

func main() {
	cli.Execute()
}
