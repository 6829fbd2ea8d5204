package scaffold

// Options configures the scaffold steps.
type Options struct {
	// DryRun reports what would change without touching the filesystem.
	DryRun bool
	// LabelDryRun tags events as dry-run while still writing the tree. Used
	// for the owned clone when previewing a merge.
	LabelDryRun bool
	// Sink, when set, receives every event as it is produced.
	Sink Sink
	// Writer performs filesystem mutations. Defaults to a FileWriter.
	Writer Writer
}

func (o Options) writer() Writer {
	if o.Writer != nil {
		return o.Writer
	}
	return NewFileWriter()
}
