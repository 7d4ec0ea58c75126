// Command reportctl builds complaint reports from the command line.
package main

import (
	_ "time/tzdata"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/cli"
)

func main() {
	cli.Execute()
}
