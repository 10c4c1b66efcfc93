package app

import (
	"sync"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/tendermint/tendermint/libs/log"
)

// Ledger is the entry point to the token ledger and the marketplace. It is
// safe for concurrent use, all operations are serialized.
type Ledger struct {
	mu sync.Mutex

	db       bazaar.CacheableKVStore
	commit   func() (bazaar.CommitID, error)
	rollback func()
	version  func() (bazaar.CommitID, error)
	close    func()

	conf     config
	logger   log.Logger
	balances cash.Controller
	tokens   nft.Controller
	market   market.Controller
}

// NewLedger returns a ledger operating on given store. The ledger is empty
// until it is initialized with Initialize or FromGenesis.
func NewLedger(db bazaar.CacheableKVStore, opts ...Option) *Ledger {
	conf := defaultConfig()
	for _, o := range opts {
		o(&conf)
	}
	balances := cash.NewController(cash.NewBucket())
	tokens := nft.NewController(nft.NewBucket())
	return &Ledger{
		db:       db,
		conf:     conf,
		logger:   conf.logger.With("module", "ledger"),
		balances: balances,
		tokens:   tokens,
		market:   market.NewController(tokens, balances),
	}
}

// exec runs a mutation. All writes of fn are applied only if it returns no
// error. Panics are recovered and reported as errors.ErrPanic.
func (l *Ledger) exec(op string, caller bazaar.Address, fn func(bazaar.KVStore) error, keyvals ...interface{}) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	defer func() {
		l.log(op, caller, start, err, true, keyvals)
	}()

	cache := l.db.CacheWrap()
	if err := run(cache, fn); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write")
	}
	if l.commit != nil {
		if _, err := l.commit(); err != nil {
			l.rollback()
			return errors.Wrap(err, "commit")
		}
	}
	return nil
}

func run(db bazaar.KVStore, fn func(bazaar.KVStore) error) (err error) {
	defer errors.Recover(&err)
	return fn(db)
}

// query runs a read only operation.
func (l *Ledger) query(op string, fn func(bazaar.ReadOnlyKVStore) error) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	defer func() {
		l.log(op, nil, start, err, false, nil)
	}()
	defer errors.Recover(&err)
	return fn(l.db)
}

func (l *Ledger) log(op string, caller bazaar.Address, start time.Time, err error, mutation bool, keyvals []interface{}) {
	kv := []interface{}{
		"op", op,
		"duration", time.Since(start).Nanoseconds() / 1000,
	}
	if caller != nil {
		kv = append(kv, "caller", caller)
	}
	kv = append(kv, keyvals...)

	switch {
	case err != nil:
		code, msg := errors.Info(err, l.conf.debug)
		l.logger.Error("operation failed", append(kv, "err", msg, "code", code)...)
	case mutation:
		l.logger.Info("operation", kv...)
	default:
		l.logger.Debug("query", kv...)
	}
}
