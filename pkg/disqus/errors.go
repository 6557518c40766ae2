package disqus

// ConfigurationError reports a missing credential or collaborator where one
// is required. It is fatal: retrying the call cannot succeed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "disqus: configuration: " + e.Reason }

// RemoteFetchError reports a failed read-style gateway call. The affected
// cache is left unset, so re-invoking the accessor retries the fetch.
type RemoteFetchError struct {
	Op  string
	Err error
}

func (e *RemoteFetchError) Error() string { return "disqus: fetch " + e.Op + ": " + e.Err.Error() }
func (e *RemoteFetchError) Unwrap() error { return e.Err }

// RemoteOperationError reports a failed write-style gateway call. Local
// caches are left untouched; the caller decides whether to retry.
type RemoteOperationError struct {
	Op  string
	Err error
}

func (e *RemoteOperationError) Error() string { return "disqus: " + e.Op + ": " + e.Err.Error() }
func (e *RemoteOperationError) Unwrap() error { return e.Err }
