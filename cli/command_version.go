package cli

import "fmt"

// Version is the release version, overridable at build time
var Version = "0.1.0"

// VersionCmd represents the version command
type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Println("lingua v" + Version)
	return nil
}
