package main

import (
	"github.com/lexhub-io/lexadmin/cmd"
)

func main() {
	cmd.Execute()
}
