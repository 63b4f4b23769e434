package service

import "errors"

var (
	// ErrSourceUnavailable means a channel listing could not be fetched.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDetailFetch means the detail page of a single item could not be fetched.
	ErrDetailFetch = errors.New("detail fetch failed")
	// ErrStore means reading from or writing to the local store failed.
	ErrStore = errors.New("store failure")
)
