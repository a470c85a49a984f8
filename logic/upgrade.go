package logic

import (
	"strconv"
	"strings"

	"social_sync/dal"
	"social_sync/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_upgrader.go -package mocks social_sync/logic IUpgrader

const installedVersionOptionName = "installed_version"

// IUpgrader runs one-time data migrations when the installed version
// recorded in the options store is older than the running version.
type IUpgrader interface {
	Run() error
}

type upgrader struct {
	logger  shared.ILogger
	repo    dal.IRepo
	notices INotices
}

func NewUpgrader(logger shared.ILogger, repo dal.IRepo, notices INotices) IUpgrader {
	return &upgrader{
		logger:  logger,
		repo:    repo,
		notices: notices,
	}
}

func (u *upgrader) Run() error {

	installed, err := u.repo.GetOption(installedVersionOptionName)
	if err != nil {
		return err
	}
	if installed == shared.Version {
		return nil
	}

	if installed != "" && versionLess(installed, "1.5") {
		if err = u.upgradeTo15(); err != nil {
			return err
		}
	}

	if err = u.repo.SetOption(installedVersionOptionName, shared.Version); err != nil {
		return err
	}
	if installed == "" {
		u.logger.Infof("Recorded fresh install at version %s", shared.Version)
	} else {
		u.logger.Infof("Upgraded from version %s to %s", installed, shared.Version)
	}
	return nil
}

// The 1.5 permission scope change invalidates every stored Facebook token.
// Connected accounts are removed and each affected user gets a notice
// asking to re-authorize.
func (u *upgrader) upgradeTo15() error {

	u.logger.Info("Running 1.5 upgrade: clearing Facebook accounts")
	userIds, err := u.repo.ClearAccounts("facebook")
	if err != nil {
		return err
	}
	u.notices.AddReauthRequired("facebook", 0)
	for _, userId := range userIds {
		u.notices.AddReauthRequired("facebook", userId)
	}
	return nil
}

// versionLess compares dotted numeric versions; missing segments count as 0.
func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			return av < bv
		}
	}
	return false
}
