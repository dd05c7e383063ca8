package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewShareCode() (string, error)
	EncodeConfigToken(payload interface{}) (string, error)
	DecodeConfigToken(token string, target interface{}) error
}

type utils struct {
	shareCodeLength int
}

func New() IUtils {
	return &utils{
		shareCodeLength: 10,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewShareCode returns a short code for shared configurations. Codes are
// the tail of a fresh ULID, short enough for a link and unique enough for
// a TTL-bounded store.
func (u *utils) NewShareCode() (string, error) {
	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return "", err
	}
	return strings.ToLower(id[len(id)-u.shareCodeLength:]), nil
}

// EncodeConfigToken packs a payload into a URL-safe token so a
// configuration can travel inside a share link query parameter.
func (u *utils) EncodeConfigToken(payload interface{}) (string, error) {
	raw, err := jsoniter.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func (u *utils) DecodeConfigToken(token string, target interface{}) error {
	if token == "" {
		return errors.New("empty config token")
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return err
	}

	return jsoniter.Unmarshal(raw, target)
}
