// Package auth authenticates API clients by API key.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyString is the string representation of an API key.
// The client has to provide this string to the server to authenticate itself.
// The format of APIKeyString is [ID]:[SECRET].
type APIKeyString string

// APIKeyHashedString is the hashed string representation of an API key.
// It is kept in the server configuration. The server is not able to recover the original APIKeyString from this.
type APIKeyHashedString string

// APIKey is a configured API key. User is recorded as the requester of every write made with the key.
type APIKey struct {
	ID         string             `yaml:"id"`
	HashString APIKeyHashedString `yaml:"hash"`
	User       string             `yaml:"user"`
}

type APIKeyAuthenticator interface {
	Authenticate(ctx context.Context, key APIKeyString) (APIKey, error)
}

func (ks APIKeyString) ID() (string, error) {
	// Split ID from APIKeyString.
	parts := strings.Split(string(ks), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", model.ErrInvalidAPIKeyString
	}

	return parts[0], nil
}

func (ks APIKeyString) Hash() (APIKeyHashedString, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(string(ks)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return APIKeyHashedString(hashed), nil
}

func NewAPIKeyString() (APIKeyString, error) {
	prefixBytes := make([]byte, 16)
	secretBytes := make([]byte, 32)

	if _, err := rand.Read(prefixBytes); err != nil {
		return "", err
	}
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}

	base64Prefix := base64.RawURLEncoding.EncodeToString(prefixBytes)
	base64Secret := base64.RawURLEncoding.EncodeToString(secretBytes)
	return APIKeyString(fmt.Sprintf("%s:%s", base64Prefix, base64Secret)), nil
}

func VerifyAPIKeyString(ks APIKeyString, hashedKs APIKeyHashedString) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKs), []byte(ks))
	if err == nil {
		return nil
	}

	if err == bcrypt.ErrMismatchedHashAndPassword {
		return model.ErrMismatchAPIKey
	}

	return err
}

type _StaticAPIKeyAuthenticator struct {
	keys map[string]APIKey
}

// NewStaticAPIKeyAuthenticator authenticates against a fixed set of keys, usually loaded from the config file.
func NewStaticAPIKeyAuthenticator(keys []APIKey) (APIKeyAuthenticator, error) {
	a := &_StaticAPIKeyAuthenticator{keys: make(map[string]APIKey, len(keys))}
	for _, key := range keys {
		if key.ID == "" || key.HashString == "" || key.User == "" {
			return nil, fmt.Errorf("API key %q needs id, hash and user%w", key.ID, model.ErrInvalidParameter)
		}
		if _, ok := a.keys[key.ID]; ok {
			return nil, fmt.Errorf("duplicated API key %q%w", key.ID, model.ErrInvalidParameter)
		}
		a.keys[key.ID] = key
	}
	return a, nil
}

func (a *_StaticAPIKeyAuthenticator) Authenticate(ctx context.Context, ks APIKeyString) (APIKey, error) {
	id, err := ks.ID()
	if err != nil {
		return APIKey{}, err
	}

	key, ok := a.keys[id]
	if !ok {
		return APIKey{}, model.ErrAPIKeyNotFound
	}
	if err := VerifyAPIKeyString(ks, key.HashString); err != nil {
		return APIKey{}, err
	}
	return key, nil
}
