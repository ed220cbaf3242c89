package cli

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("eq v{{.Version}}\n")
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
