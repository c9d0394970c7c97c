// Command footadmin manages the national team football records of a data
// directory.
package main

import (
	"os"

	"github.com/footadmin/footadmin/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
