package logic

import (
	"errors"
	"fmt"
	"social_sync/dal"
	"social_sync/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_registry.go -package mocks social_sync/logic IAccountRegistry

// ErrUnknownService means the caller passed a service key no adapter is
// registered for. This is a caller bug, not a data condition.
var ErrUnknownService = errors.New("unknown service key")

// IAccountRegistry holds the connected accounts per service. Lookup of an
// unknown account ID returns nil, nil; only an unknown service key is an
// error.
type IAccountRegistry interface {
	Register(serviceKey string, acct *dal.Account) error
	Lookup(serviceKey, accountId string) (*dal.Account, error)
	All(serviceKey string) ([]*dal.Account, error)
	Disconnect(serviceKey, accountId string) error
	FlagDeauthorized(serviceKey, accountId string) error
}

type accountRegistry struct {
	logger   shared.ILogger
	repo     dal.IRepo
	adapters IAdapterRegistry
	notices  INotices
}

func NewAccountRegistry(
	logger shared.ILogger,
	repo dal.IRepo,
	adapters IAdapterRegistry,
	notices INotices,
) IAccountRegistry {
	return &accountRegistry{
		logger:   logger,
		repo:     repo,
		adapters: adapters,
		notices:  notices,
	}
}

func (reg *accountRegistry) checkService(serviceKey string) error {
	if reg.adapters.Get(serviceKey) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownService, serviceKey)
	}
	return nil
}

func (reg *accountRegistry) Register(serviceKey string, acct *dal.Account) error {
	if err := reg.checkService(serviceKey); err != nil {
		return err
	}
	acct.Service = serviceKey
	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}
	reg.logger.Infof("Registering %s account %s (personal: %v)", serviceKey, acct.Id, acct.Personal)
	return reg.repo.UpsertAccount(acct)
}

func (reg *accountRegistry) Lookup(serviceKey, accountId string) (*dal.Account, error) {
	if err := reg.checkService(serviceKey); err != nil {
		return nil, err
	}
	return reg.repo.GetAccount(serviceKey, accountId)
}

func (reg *accountRegistry) All(serviceKey string) ([]*dal.Account, error) {
	if err := reg.checkService(serviceKey); err != nil {
		return nil, err
	}
	return reg.repo.GetAccounts(serviceKey)
}

// Disconnect severs the link at the user's request: best-effort remote
// revocation, then the account is removed for good.
func (reg *accountRegistry) Disconnect(serviceKey, accountId string) error {
	if err := reg.checkService(serviceKey); err != nil {
		return err
	}
	acct, err := reg.repo.GetAccount(serviceKey, accountId)
	if err != nil {
		return err
	}
	if acct == nil {
		return nil
	}
	if err = reg.adapters.Get(serviceKey).Deauthorize(acct); err != nil {
		reg.logger.Warnf("Remote deauthorization failed for %s/%s: %v", serviceKey, accountId, err)
	}
	return reg.repo.DeleteAccount(serviceKey, accountId)
}

// FlagDeauthorized marks an account whose credentials the remote service no
// longer accepts. The account stays around so reconnecting preserves
// history; an operator notice asks for re-authorization.
func (reg *accountRegistry) FlagDeauthorized(serviceKey, accountId string) error {
	if err := reg.checkService(serviceKey); err != nil {
		return err
	}
	reg.logger.Warnf("Flagging %s account %s as deauthorized", serviceKey, accountId)
	if err := reg.repo.SetAccountDeauthed(serviceKey, accountId, true); err != nil {
		return err
	}
	reg.notices.AddDeauthed(serviceKey, accountId)
	return nil
}
