package logic

import (
	"social_sync/dal"
	"social_sync/shared"
	"social_sync/texts"
	"strconv"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notices.go -package mocks social_sync/logic INotices

const (
	NoticeDeauthed       = "deauthed"
	NoticeDeliveryFailed = "delivery_failed"
	NoticeReauthRequired = "reauth_required"
	NoticeConfigError    = "config_error"
)

// INotices is the operator-facing failure surface: one row per failure
// occurrence, standing until explicitly dismissed. Nothing here ever blocks
// or fails the operation that raised the notice.
type INotices interface {
	AddDeauthed(service, accountId string)
	AddDeliveryFailure(service, accountId string, postId int64, reason FailureReason)
	AddReauthRequired(service string, userId int64)
	AddConfigError(message string)
	All() ([]*dal.Notice, error)
	Dismiss(id int64) error
}

type notices struct {
	logger  shared.ILogger
	repo    dal.IRepo
	txt     texts.ITexts
	metrics IMetrics
}

func NewNotices(
	logger shared.ILogger,
	repo dal.IRepo,
	txt texts.ITexts,
	metrics IMetrics,
) INotices {
	return &notices{
		logger:  logger,
		repo:    repo,
		txt:     txt,
		metrics: metrics,
	}
}

func (n *notices) add(notice *dal.Notice) {
	notice.CreatedAt = time.Now().UTC()
	if err := n.repo.AddNotice(notice); err != nil {
		n.logger.Errorf("Failed to store %s notice: %v", notice.Kind, err)
		return
	}
	n.metrics.NoticeRaised(notice.Kind)
}

func (n *notices) AddDeauthed(service, accountId string) {
	n.add(&dal.Notice{
		Service:   service,
		AccountId: accountId,
		Kind:      NoticeDeauthed,
		Message: n.txt.WithVals("deauthed_notice.txt", map[string]string{
			"service": service,
			"account": accountId,
		}),
	})
}

func (n *notices) AddDeliveryFailure(service, accountId string, postId int64, reason FailureReason) {
	n.add(&dal.Notice{
		Service:   service,
		AccountId: accountId,
		Kind:      NoticeDeliveryFailed,
		Message: n.txt.WithVals("delivery_failed.txt", map[string]string{
			"service": service,
			"account": accountId,
			"post":    strconv.FormatInt(postId, 10),
			"reason":  string(reason),
		}),
	})
}

func (n *notices) AddReauthRequired(service string, userId int64) {
	scope := "global"
	if userId != 0 {
		scope = "user " + strconv.FormatInt(userId, 10)
	}
	n.add(&dal.Notice{
		Service: service,
		Kind:    NoticeReauthRequired,
		Message: n.txt.WithVals("reauth_required.txt", map[string]string{
			"service": service,
			"scope":   scope,
		}),
	})
}

func (n *notices) AddConfigError(message string) {
	n.add(&dal.Notice{
		Kind:    NoticeConfigError,
		Message: message,
	})
}

func (n *notices) All() ([]*dal.Notice, error) {
	return n.repo.GetNotices()
}

func (n *notices) Dismiss(id int64) error {
	return n.repo.DismissNotice(id)
}
