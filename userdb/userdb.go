// Package userdb implements a very simple, read-only user database for the
// admin endpoints.
package userdb

import (
	"encoding/json"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Authenticate(username, password string) error
}

type userdb map[string]string // username: bcrypt hash

func (db userdb) Authenticate(username, password string) error {
	storedHash, ok := db[username]
	if !ok {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
}

// Open reads the JSON user file at path. If it does not exist, an empty one is
// created, so no one can log in until a user is added.
func Open(path string) (Authenticator, error) {
	var db = userdb{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return db, json.Unmarshal(data, &db)
	case os.IsNotExist(err):
		return db, os.WriteFile(path, []byte("{}"), 0660)
	default:
		return nil, err
	}
}

// Hash returns the bcrypt hash of a password, as stored in the user file.
func Hash(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	return string(hash), err
}

// BasicAuth calls f only if the request carries valid credentials.
func BasicAuth(users Authenticator, realm string, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if ok && users.Authenticate(username, password) == nil {
			f(w, r)
			return
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
}
