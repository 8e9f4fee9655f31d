package cli

import (
	"fmt"

	"github.com/diillson/aws-storage-audit-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   ____  _                                  _             _ _ _
  / ___|| |_ ___  _ __ __ _  __ _  ___     / \  _   _  __| (_) |_
  \___ \| __/ _ \| '__/ _' |/ _' |/ _ \   / _ \| | | |/ _' | | __|
   ___) | || (_) | | | (_| | (_| |  __/  / ___ \ |_| | (_| | | |_
  |____/ \__\___/|_|  \__,_|\__, |\___| /_/   \_\__,_|\__,_|_|\__|
                            |___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Storage Audit CLI (v%s)", formattedVersion)))
}
