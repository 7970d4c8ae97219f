package application

import (
	"context"
	"fmt"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/internal/core/ports"
)

// WalletService exposes creation, rename and deletion of wallets and
// accounts, plus the password-gated access to stored credentials.
type WalletService struct {
	repoManager ports.RepoManager
	crypter     domain.Crypter
}

// NewWalletService returns a WalletService using the given repositories and
// crypto provider.
func NewWalletService(
	repoManager ports.RepoManager, crypter domain.Crypter,
) *WalletService {
	return &WalletService{
		repoManager: repoManager,
		crypter:     crypter,
	}
}

// GetWallets returns all wallets.
func (s *WalletService) GetWallets(ctx context.Context) ([]domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.WalletRepository().GetAllWallets(ctx)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]domain.Wallet), nil
}

// GetWallet returns the wallet with the given id, or nil if absent. Absence
// is a normal outcome here, not an error.
func (s *WalletService) GetWallet(
	ctx context.Context, id string,
) (*domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.WalletRepository().GetWallet(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Wallet), nil
}

// CreateHDWallet creates a new HD wallet and its credential in one
// transaction. The very first creation seals the security context with the
// given password; afterwards the password must match the sealed one.
func (s *WalletService) CreateHDWallet(
	ctx context.Context,
	password string, seed domain.RevealableSeed, name string,
) (*domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			mainContext, err := s.repoManager.ContextRepository().GetContext(ctx)
			if err != nil {
				return nil, err
			}
			if !mainContext.CheckPassword(s.crypter, password) {
				return nil, domain.ErrWrongPassword
			}

			walletID := fmt.Sprintf("%s-%d", domain.WalletTypeHD, mainContext.NextHD)
			walletName := name
			if walletName == "" {
				walletName = fmt.Sprintf("HD Wallet %d", mainContext.NextHD)
			}

			wallet := &domain.Wallet{
				ID:             walletID,
				Name:           walletName,
				Type:           domain.WalletTypeHD,
				Accounts:       []string{},
				NextAccountIDs: map[string]int{},
			}
			if err := s.repoManager.WalletRepository().AddWallet(ctx, wallet); err != nil {
				return nil, err
			}

			credential, err := domain.NewCredential(walletID, seed)
			if err != nil {
				return nil, &domain.InternalError{Op: "serializing credential", Err: err}
			}
			if err := s.repoManager.CredentialRepository().AddCredential(
				ctx, credential,
			); err != nil {
				return nil, err
			}

			if err := s.repoManager.ContextRepository().UpdateContext(
				ctx, func(c *domain.Context) (*domain.Context, error) {
					if err := c.Seal(s.crypter, password); err != nil {
						return nil, err
					}
					c.NextHD++
					return c, nil
				},
			); err != nil {
				return nil, err
			}

			return wallet, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Wallet), nil
}

// CreateHWWallet creates a new hardware wallet record. No credential row is
// written, hardware wallets hold no local seed.
func (s *WalletService) CreateHWWallet(
	ctx context.Context, deviceID, name string,
) (*domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			walletID := fmt.Sprintf("%s-%s", domain.WalletTypeHW, deviceID)
			walletName := name
			if walletName == "" {
				walletName = fmt.Sprintf("HW Wallet %s", deviceID)
			}

			wallet := &domain.Wallet{
				ID:             walletID,
				Name:           walletName,
				Type:           domain.WalletTypeHW,
				Accounts:       []string{},
				NextAccountIDs: map[string]int{},
			}
			if err := s.repoManager.WalletRepository().AddWallet(ctx, wallet); err != nil {
				return nil, err
			}
			return wallet, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Wallet), nil
}

// RemoveWallet deletes an HD or HW wallet along with its credential and all
// associated accounts in one transaction.
func (s *WalletService) RemoveWallet(
	ctx context.Context, walletID, password string,
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			wallet, err := s.repoManager.WalletRepository().GetWallet(ctx, walletID)
			if err != nil {
				return nil, err
			}
			if wallet == nil {
				return nil, &domain.NotFoundError{Entity: "wallet", ID: walletID}
			}
			if !wallet.CanBeRemoved() {
				return nil, fmt.Errorf(
					"%w: only HD or HW wallets can be removed",
					domain.ErrInvalidOperation,
				)
			}

			if err := s.checkPassword(ctx, password); err != nil {
				return nil, err
			}

			for _, accountID := range wallet.Accounts {
				if err := s.repoManager.AccountRepository().DeleteAccount(
					ctx, accountID,
				); err != nil {
					return nil, err
				}
			}
			if err := s.repoManager.CredentialRepository().DeleteCredential(
				ctx, walletID,
			); err != nil {
				return nil, err
			}
			return nil, s.repoManager.WalletRepository().DeleteWallet(ctx, walletID)
		},
	)
	return err
}

// SetWalletName renames an HD or HW wallet.
func (s *WalletService) SetWalletName(
	ctx context.Context, walletID, name string,
) (*domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var wallet *domain.Wallet
			if err := s.repoManager.WalletRepository().UpdateWallet(
				ctx, walletID,
				func(w *domain.Wallet) (*domain.Wallet, error) {
					if !w.CanBeRenamed() {
						return nil, fmt.Errorf(
							"%w: only HD or HW wallets can be renamed",
							domain.ErrInvalidOperation,
						)
					}
					w.Name = name
					wallet = w
					return w, nil
				},
			); err != nil {
				return nil, err
			}
			return wallet, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Wallet), nil
}

// GetCredential returns the decoded credential of an HD wallet, recovering
// the mnemonic from the stored entropy through the crypto provider. The seed
// bytes are returned exactly as stored.
func (s *WalletService) GetCredential(
	ctx context.Context, walletID, password string,
) (*domain.ExportedCredential, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			if err := s.checkPassword(ctx, password); err != nil {
				return nil, err
			}

			credential, err := s.repoManager.CredentialRepository().GetCredential(
				ctx, walletID,
			)
			if err != nil {
				return nil, err
			}
			seed, err := credential.RevealableSeed()
			if err != nil {
				return nil, &domain.InternalError{Op: "decoding credential", Err: err}
			}

			mnemonic, err := s.crypter.MnemonicFromEntropy(
				seed.EntropyWithLangPrefixed, password,
			)
			if err != nil {
				return nil, err
			}

			return &domain.ExportedCredential{
				Mnemonic: mnemonic,
				Seed:     seed.Seed,
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.ExportedCredential), nil
}

// ConfirmHDWalletBackuped idempotently marks an HD wallet as backed up.
func (s *WalletService) ConfirmHDWalletBackuped(
	ctx context.Context, walletID string,
) (*domain.Wallet, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var wallet *domain.Wallet
			if err := s.repoManager.WalletRepository().UpdateWallet(
				ctx, walletID,
				func(w *domain.Wallet) (*domain.Wallet, error) {
					if !w.IsHD() {
						return nil, fmt.Errorf(
							"%w: wallet %s is not an HD wallet",
							domain.ErrInvalidOperation, walletID,
						)
					}
					w.Backuped = true
					wallet = w
					return w, nil
				},
			); err != nil {
				return nil, err
			}
			return wallet, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Wallet), nil
}

// AddAccount creates a standalone account record. The account exists
// independently until it is attached to a wallet.
func (s *WalletService) AddAccount(
	ctx context.Context, account domain.Account,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.AccountRepository().AddAccount(
				ctx, &account,
			); err != nil {
				return nil, err
			}
			return &account, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// AddAccountToWallet attaches an existing account to an existing wallet with
// set semantics and bumps the wallet's per-cointype account counter when the
// set actually changes.
func (s *WalletService) AddAccountToWallet(
	ctx context.Context, walletID, accountID string,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			wallet, err := s.repoManager.WalletRepository().GetWallet(ctx, walletID)
			if err != nil {
				return nil, err
			}
			if wallet == nil {
				return nil, &domain.NotFoundError{Entity: "wallet", ID: walletID}
			}

			account, err := s.repoManager.AccountRepository().GetAccount(
				ctx, accountID,
			)
			if err != nil {
				return nil, err
			}

			if err := s.repoManager.WalletRepository().UpdateWallet(
				ctx, walletID,
				func(w *domain.Wallet) (*domain.Wallet, error) {
					if w.AddAccount(accountID) {
						if w.NextAccountIDs == nil {
							w.NextAccountIDs = map[string]int{}
						}
						w.NextAccountIDs[account.CoinType]++
					}
					return w, nil
				},
			); err != nil {
				return nil, err
			}
			return account, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// GetAccounts returns the accounts matching the given ids, skipping missing
// ones.
func (s *WalletService) GetAccounts(
	ctx context.Context, ids []string,
) ([]domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.AccountRepository().GetAccounts(ctx, ids)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]domain.Account), nil
}

// GetAccount returns the account with the given id.
func (s *WalletService) GetAccount(
	ctx context.Context, id string,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.AccountRepository().GetAccount(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// RemoveAccount removes the association between a wallet and an account and
// deletes the account record in one transaction. Password verification is
// required only for HD and imported wallets.
func (s *WalletService) RemoveAccount(
	ctx context.Context, walletID, accountID, password string,
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			wallet, err := s.repoManager.WalletRepository().GetWallet(ctx, walletID)
			if err != nil {
				return nil, err
			}
			if wallet == nil {
				return nil, &domain.NotFoundError{Entity: "wallet", ID: walletID}
			}
			if !wallet.HasAccount(accountID) {
				return nil, fmt.Errorf(
					"%w: account %s is not associated with wallet %s",
					domain.ErrNotFound, accountID, walletID,
				)
			}
			if _, err := s.repoManager.AccountRepository().GetAccount(
				ctx, accountID,
			); err != nil {
				return nil, err
			}

			// hardware and watching wallets hold no local secret, removing
			// their accounts is not password-gated
			if wallet.Type == domain.WalletTypeHD ||
				wallet.Type == domain.WalletTypeImported {
				if err := s.checkPassword(ctx, password); err != nil {
					return nil, err
				}
			}

			if err := s.repoManager.WalletRepository().UpdateWallet(
				ctx, walletID,
				func(w *domain.Wallet) (*domain.Wallet, error) {
					w.RemoveAccount(accountID)
					return w, nil
				},
			); err != nil {
				return nil, err
			}
			return nil, s.repoManager.AccountRepository().DeleteAccount(ctx, accountID)
		},
	)
	return err
}

// SetAccountName renames an account.
func (s *WalletService) SetAccountName(
	ctx context.Context, accountID, name string,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var account *domain.Account
			if err := s.repoManager.AccountRepository().UpdateAccount(
				ctx, accountID,
				func(a *domain.Account) (*domain.Account, error) {
					a.Name = name
					account = a
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return account, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// AddAccountAddress records an address for an account: single-address
// accounts get their address replaced, multi-address accounts get the
// address added to their set.
func (s *WalletService) AddAccountAddress(
	ctx context.Context, accountID, networkID, address string,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var account *domain.Account
			if err := s.repoManager.AccountRepository().UpdateAccount(
				ctx, accountID,
				func(a *domain.Account) (*domain.Account, error) {
					if a.Type == domain.AccountTypeSimple {
						a.Address = address
					} else {
						a.AddAddress(address)
					}
					account = a
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return account, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// RemoveAccountAddress removes an address from an account. Removing an
// absent address is a no-op.
func (s *WalletService) RemoveAccountAddress(
	ctx context.Context, accountID, networkID, address string,
) (*domain.Account, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var account *domain.Account
			if err := s.repoManager.AccountRepository().UpdateAccount(
				ctx, accountID,
				func(a *domain.Account) (*domain.Account, error) {
					if a.Type == domain.AccountTypeSimple {
						if a.Address == address {
							a.Address = ""
						}
					} else {
						a.RemoveAddress(address)
					}
					account = a
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return account, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Account), nil
}

// checkPassword verifies the password against the singleton context within
// the current transaction scope.
func (s *WalletService) checkPassword(ctx context.Context, password string) error {
	mainContext, err := s.repoManager.ContextRepository().GetContext(ctx)
	if err != nil {
		return err
	}
	if !mainContext.CheckPassword(s.crypter, password) {
		return domain.ErrWrongPassword
	}
	return nil
}
