package dbbadger

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/internal/core/ports"
)

type repoManager struct {
	store *badgerhold.Store

	networkRepository    domain.NetworkRepository
	tokenRepository      domain.TokenRepository
	walletRepository     domain.WalletRepository
	accountRepository    domain.AccountRepository
	contextRepository    domain.ContextRepository
	credentialRepository domain.CredentialRepository

	// serializes write transactions, no two write scopes may be in flight
	// concurrently against the same store
	writeMtx sync.Mutex
}

// NewRepoManager opens (or creates if not exists) the badger store on disk
// and returns the repositories bound to it. An empty baseDbDir makes the
// store in-memory, which is used for testing purposes.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, "wallet")
	}

	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	return &repoManager{
		store:                store,
		networkRepository:    NewNetworkRepositoryImpl(store),
		tokenRepository:      NewTokenRepositoryImpl(store),
		walletRepository:     NewWalletRepositoryImpl(store),
		accountRepository:    NewAccountRepositoryImpl(store),
		contextRepository:    NewContextRepositoryImpl(store),
		credentialRepository: NewCredentialRepositoryImpl(store),
	}, nil
}

func (d *repoManager) NetworkRepository() domain.NetworkRepository {
	return d.networkRepository
}

func (d *repoManager) TokenRepository() domain.TokenRepository {
	return d.tokenRepository
}

func (d *repoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *repoManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *repoManager) ContextRepository() domain.ContextRepository {
	return d.contextRepository
}

func (d *repoManager) CredentialRepository() domain.CredentialRepository {
	return d.credentialRepository
}

func (d *repoManager) Close() {
	d.store.Close()
}

func (d *repoManager) NewTransaction() ports.Transaction {
	return d.store.Badger().NewTransaction(true)
}

// RunTransaction runs the handler inside a single badger transaction that is
// passed down to the repositories through the context. The transaction is
// committed only if the handler returns without error, otherwise it is
// discarded and no partial write is observable. A panic inside the handler
// discards the transaction as well.
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (res interface{}, err error) {
	if !readOnly {
		d.writeMtx.Lock()
		defer d.writeMtx.Unlock()
	}

	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("recovered: %v", rec)
		}
	}()

	res, err = handler(context.WithValue(ctx, "tx", tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, &domain.InternalError{Op: "committing transaction", Err: err}
		}
	}
	return res, nil
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
