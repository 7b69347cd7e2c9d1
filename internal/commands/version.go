package commands

import (
	"fmt"

	"github.com/untillpro/qb/internal/helper"
)

func Version() error {
	ver, err := helper.GetInstalledVersion()
	if err != nil {
		return err
	}
	fmt.Printf("qb version %s\n", ver)

	latest := helper.GetLastVersion()
	if len(latest) > 0 && helper.IsOutdated(ver, latest) {
		fmt.Printf("Installed qb version %s is too old (last version is %s)\n", ver, latest)
		fmt.Println("You can install last version with:")
		fmt.Println("-----------------------------------------")
		fmt.Println("go install github.com/untillpro/qb@latest")
		fmt.Println("-----------------------------------------")
	}

	return nil
}
