package history

// Filter applies FilterOptions to a slice of history entries, preserving
// order. With MaxLines set, the newest entries win.
func Filter(entries []Entry, opts FilterOptions) []Entry {
	var result []Entry

	for _, e := range entries {
		if !opts.Since.IsZero() && e.Timestamp.Before(opts.Since) {
			continue
		}
		if opts.RemoveDup && len(result) > 0 && result[len(result)-1].Command == e.Command {
			continue
		}
		result = append(result, e)
	}

	if opts.MaxLines > 0 && len(result) > opts.MaxLines {
		result = result[len(result)-opts.MaxLines:]
	}

	return result
}

// Commands extracts just the command strings from entries.
func Commands(entries []Entry) []string {
	cmds := make([]string, len(entries))
	for i, e := range entries {
		cmds[i] = e.Command
	}
	return cmds
}
