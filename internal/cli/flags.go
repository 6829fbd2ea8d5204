package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagDryRun   = "dry-run"
	FlagYes      = "yes"
	FlagBase     = "base"
	FlagInto     = "into"
	FlagOutput   = "output"
	FlagManifest = "manifest"
	FlagStrategy = "strategy"
	FlagReport   = "report"
	FlagConfig   = "config"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescDryRun   = "Show actions without changing the destination"
	DescYes      = "Accept all values without prompting"
	DescBase     = "Project name used inside the template (default from config: acme-app)"
	DescInto     = "Merge the scaffold into this existing directory"
	DescOutput   = "Parent directory of the new project"
	DescManifest = "URL or file listing templates to choose from"
	DescStrategy = "Replacement strategy: sequential or confluent"
	DescReport   = "Write a YAML report of the run to this file"
	DescConfig   = "Path to config file"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
)
