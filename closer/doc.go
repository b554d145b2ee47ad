// Package closer releases resources without making the caller handle close
// errors. Failures are logged through [log/slog] and otherwise dropped, which
// suits cleanup paths where the primary error is already being returned:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer closer.Quietly(f, handler)
//
// A nil handler logs to stderr.
package closer
