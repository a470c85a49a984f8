package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"social_sync/shared"
	"sync"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks social_sync/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetOption(name string) (string, error)
	SetOption(name, val string) error
	UpsertAccount(acct *Account) error
	GetAccount(service, accountId string) (*Account, error)
	GetAccounts(service string) ([]*Account, error)
	GetAllAccounts() ([]*Account, error)
	DeleteAccount(service, accountId string) error
	ClearAccounts(service string) (userIds []int64, err error)
	SetAccountDeauthed(service, accountId string, deauthed bool) error
	UpsertPost(post *Post) error
	GetPost(postId int64) (*Post, error)
	DeletePost(postId int64) error
	SetChosenAccounts(postId int64, accounts []ChosenAccount) error
	GetChosenAccounts(postId int64) ([]ChosenAccount, error)
	SetServiceContent(postId int64, service, content string) error
	GetServiceContent(postId int64, service string) (string, error)
	MergeBroadcastId(postId int64, service, accountId, remoteId string) error
	GetBroadcastIds(postId int64) (map[string]map[string]string, error)
	AddCommentIfNew(comment *Comment) (isNew bool, err error)
	GetComments(postId int64) ([]*Comment, error)
	AddNotice(notice *Notice) error
	GetNotices() ([]*Notice, error)
	DismissNotice(id int64) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetOption(name string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT val FROM options WHERE name=?`, name)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) SetOption(name, val string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO options (name, val) VALUES(?, ?)
		ON CONFLICT DO UPDATE SET val=excluded.val`, name, val)
	return err
}

func (repo *Repo) UpsertAccount(acct *Account) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO accounts
    	(service, account_id, user_id, name, avatar_url, personal, deauthed, access_token, access_secret, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (service, account_id, user_id) DO UPDATE SET
			name=excluded.name, avatar_url=excluded.avatar_url, personal=excluded.personal,
			deauthed=excluded.deauthed, access_token=excluded.access_token, access_secret=excluded.access_secret`,
		acct.Service, acct.Id, acct.UserId, acct.Name, acct.AvatarUrl, acct.Personal, acct.Deauthed,
		acct.AccessToken, acct.AccessSecret, acct.CreatedAt)
	return err
}

const accountFields = `service, account_id, user_id, name, avatar_url, personal, deauthed,
	access_token, access_secret, created_at`

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	var res Account
	err := row.Scan(&res.Service, &res.Id, &res.UserId, &res.Name, &res.AvatarUrl, &res.Personal,
		&res.Deauthed, &res.AccessToken, &res.AccessSecret, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetAccount(service, accountId string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	// Global pool first, then personal scopes
	row := repo.db.QueryRow(`SELECT `+accountFields+` FROM accounts
		WHERE service=? AND account_id=? ORDER BY user_id LIMIT 1`, service, accountId)
	res, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetAccounts(service string) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+accountFields+` FROM accounts
		WHERE service=? ORDER BY id`, service)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

func (repo *Repo) GetAllAccounts() ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT ` + accountFields + ` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

func readAccounts(rows *sql.Rows) ([]*Account, error) {
	res := make([]*Account, 0)
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) DeleteAccount(service, accountId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM accounts WHERE service=? AND account_id=?`, service, accountId)
	return err
}

func (repo *Repo) ClearAccounts(service string) (userIds []int64, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var rows *sql.Rows
	rows, err = repo.db.Query(`SELECT DISTINCT user_id FROM accounts WHERE service=? AND user_id<>0`, service)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		userIds = append(userIds, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if _, err = repo.db.Exec(`DELETE FROM accounts WHERE service=?`, service); err != nil {
		return nil, err
	}
	return userIds, nil
}

func (repo *Repo) SetAccountDeauthed(service, accountId string, deauthed bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET deauthed=? WHERE service=? AND account_id=?`,
		deauthed, service, accountId)
	return err
}

func (repo *Repo) UpsertPost(post *Post) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO posts (id, title, content, author, permalink, published_at, notify)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title=excluded.title, content=excluded.content, author=excluded.author,
			permalink=excluded.permalink, published_at=excluded.published_at, notify=excluded.notify`,
		post.Id, post.Title, post.Content, post.Author, post.Permalink, post.PublishedAt, post.Notify)
	return err
}

func (repo *Repo) GetPost(postId int64) (*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, title, content, author, permalink, published_at, notify
		FROM posts WHERE id=?`, postId)
	var res Post
	err := row.Scan(&res.Id, &res.Title, &res.Content, &res.Author, &res.Permalink, &res.PublishedAt, &res.Notify)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) DeletePost(postId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var err error
	if _, err = repo.db.Exec(`DELETE FROM posts WHERE id=?`, postId); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM chosen_accounts WHERE post_id=?`, postId); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM post_contents WHERE post_id=?`, postId); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM broadcast_ids WHERE post_id=?`, postId); err != nil {
		return err
	}
	if _, err = repo.db.Exec(`DELETE FROM comments WHERE post_id=?`, postId); err != nil {
		return err
	}
	return nil
}

func (repo *Repo) SetChosenAccounts(postId int64, accounts []ChosenAccount) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var err error
	if _, err = repo.db.Exec(`DELETE FROM chosen_accounts WHERE post_id=?`, postId); err != nil {
		return err
	}
	for _, ca := range accounts {
		_, err = repo.db.Exec(`INSERT INTO chosen_accounts (post_id, service, account_id) VALUES(?, ?, ?)`,
			postId, ca.Service, ca.AccountId)
		if err != nil {
			return err
		}
	}
	return nil
}

func (repo *Repo) GetChosenAccounts(postId int64) ([]ChosenAccount, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT service, account_id FROM chosen_accounts WHERE post_id=?`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]ChosenAccount, 0)
	for rows.Next() {
		var ca ChosenAccount
		if err = rows.Scan(&ca.Service, &ca.AccountId); err != nil {
			return nil, err
		}
		res = append(res, ca)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetServiceContent(postId int64, service, content string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO post_contents (post_id, service, content) VALUES(?, ?, ?)
		ON CONFLICT DO UPDATE SET content=excluded.content`, postId, service, content)
	return err
}

func (repo *Repo) GetServiceContent(postId int64, service string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT content FROM post_contents WHERE post_id=? AND service=?`, postId, service)
	var res string
	err := row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

// MergeBroadcastId records a successful delivery. Existing entries for other
// accounts are left untouched; a re-send for the same account overwrites
// only that account's remote ID.
func (repo *Repo) MergeBroadcastId(postId int64, service, accountId, remoteId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO broadcast_ids (post_id, service, account_id, remote_id)
		VALUES(?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET remote_id=excluded.remote_id`,
		postId, service, accountId, remoteId)
	return err
}

func (repo *Repo) GetBroadcastIds(postId int64) (map[string]map[string]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT service, account_id, remote_id FROM broadcast_ids WHERE post_id=?`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make(map[string]map[string]string)
	for rows.Next() {
		var service, accountId, remoteId string
		if err = rows.Scan(&service, &accountId, &remoteId); err != nil {
			return nil, err
		}
		if _, ok := res[service]; !ok {
			res[service] = make(map[string]string)
		}
		res[service][accountId] = remoteId
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddCommentIfNew(comment *Comment) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec(`INSERT INTO comments
    	(post_id, guid_hash, service, remote_id, author, author_url, avatar_url, content, reply_type, full_comment, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		comment.PostId, comment.GuidHash, comment.Service, comment.RemoteId, comment.Author,
		comment.AuthorUrl, comment.AvatarUrl, comment.Content, comment.ReplyType, comment.FullComment,
		comment.CreatedAt)

	if err == nil {
		isNew = true
		return
	}

	// Duplicate key: this reply has been aggregated before
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}

	return
}

func (repo *Repo) GetComments(postId int64) ([]*Comment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, post_id, guid_hash, service, remote_id, author, author_url,
    	avatar_url, content, reply_type, full_comment, created_at
		FROM comments WHERE post_id=? ORDER BY created_at`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Comment, 0)
	for rows.Next() {
		c := Comment{}
		err = rows.Scan(&c.Id, &c.PostId, &c.GuidHash, &c.Service, &c.RemoteId, &c.Author, &c.AuthorUrl,
			&c.AvatarUrl, &c.Content, &c.ReplyType, &c.FullComment, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddNotice(notice *Notice) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO notices (service, account_id, kind, message, created_at)
		VALUES(?, ?, ?, ?, ?)`,
		notice.Service, notice.AccountId, notice.Kind, notice.Message, notice.CreatedAt)
	return err
}

func (repo *Repo) GetNotices() ([]*Notice, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, service, account_id, kind, message, created_at
		FROM notices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Notice, 0)
	for rows.Next() {
		n := Notice{}
		if err = rows.Scan(&n.Id, &n.Service, &n.AccountId, &n.Kind, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) DismissNotice(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM notices WHERE id=?`, id)
	return err
}
