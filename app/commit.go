package app

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store/iavl"
)

// dbName is the name of the database created in the ledger directory.
const dbName = "bazaar"

// OpenLedger opens, or creates, a persistent ledger stored in given
// directory. Every successful mutation commits a new version. When the commit
// fails the writes of that mutation are dropped. Call Close to release the
// database.
func OpenLedger(dir string, opts ...Option) (*Ledger, error) {
	cs, err := iavl.NewCommitStore(dir, dbName)
	if err != nil {
		return nil, err
	}
	l := NewLedger(cs.Adapter(), opts...)
	l.commit = cs.Commit
	l.rollback = cs.Rollback
	l.close = cs.Close
	l.version = cs.LatestVersion
	return l, nil
}

// Version returns the latest committed version. An in memory ledger has no
// versions.
func (l *Ledger) Version() (bazaar.CommitID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.version == nil {
		return bazaar.CommitID{}, errors.Wrap(errors.ErrState, "in memory ledger")
	}
	return l.version()
}

// Close releases the resources held by a persistent ledger. The ledger must
// not be used afterwards.
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.close != nil {
		l.close()
		l.close = nil
	}
}
