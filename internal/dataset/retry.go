package dataset

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// LoadWithRetry retries transient load failures, e.g. a dataset on a volume
// that is still mounting at boot. A missing key column is a data defect, not a
// transient condition, so it fails immediately. Like Load, the returned
// snapshot is always usable; the error is a diagnostic for the caller to log.
func LoadWithRetry(path string, maxElapsed time.Duration) (*Dataset, error) {
	var ds *Dataset
	var loadErr error

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed

	operation := func() error {
		ds, loadErr = Load(path)
		if loadErr == nil {
			return nil
		}
		if errors.Is(loadErr, ErrKeyColumnMissing) {
			return backoff.Permanent(loadErr)
		}
		return loadErr
	}

	if err := backoff.Retry(operation, bo); err != nil {
		return Empty(), loadErr
	}
	return ds, nil
}
