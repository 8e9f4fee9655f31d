package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	Region     string
	Bucket     string
	DryRun     bool
	ReportName string
	ReportType []string
	Dir        string
}
