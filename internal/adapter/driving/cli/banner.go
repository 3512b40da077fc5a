package cli

import (
	"fmt"

	"github.com/diillson/aws-reservation-summary/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ___        ______    ____                                 _   _
    / \ \      / / ___|  |  _ \ ___  ___  ___ _ ____   ____ _| |_(_) ___  _ __  ___
   / _ \ \ /\ / /\___ \  | |_) / _ \/ __|/ _ \ '__\ \ / / _' | __| |/ _ \| '_ \/ __|
  / ___ \ V  V /  ___) | |  _ <  __/\__ \  __/ |   \ V / (_| | |_| | (_) | | | \__ \
 /_/   \_\_/\_/  |____/  |_| \_\___||___/\___|_|    \_/ \__,_|\__|_|\___/|_| |_|___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Reservation Summary CLI (v%s)", formattedVersion)))
}
