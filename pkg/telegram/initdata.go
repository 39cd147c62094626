// Пакет telegram — проверка initData, которую Telegram передаёт Mini App.
// Алгоритм: https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoBotToken      = errors.New("telegram: bot token is not configured")
	ErrEmptyInitData   = errors.New("telegram: empty init data")
	ErrHashMissing     = errors.New("telegram: hash is missing")
	ErrSignInvalid     = errors.New("telegram: init data signature is invalid")
	ErrInitDataExpired = errors.New("telegram: init data expired")
	ErrUserMissing     = errors.New("telegram: user is missing")
)

// User — пользователь Telegram из поля user.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// InitData — проверенные данные запуска Mini App.
type InitData struct {
	User     User
	AuthDate time.Time
	QueryID  string
}

// Verifier — проверяет подпись initData токеном бота.
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewVerifier — maxAge <= 0 отключает проверку возраста.
func NewVerifier(botToken string, maxAge time.Duration) *Verifier {
	v := &Verifier{maxAge: maxAge, now: time.Now}
	if botToken != "" {
		v.secret = secretKey(botToken)
	}
	return v
}

// Verify — разбирает строку initData, проверяет hash и срок, возвращает пользователя.
func (v *Verifier) Verify(raw string) (*InitData, error) {
	if len(v.secret) == 0 {
		return nil, ErrNoBotToken
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInitData
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("telegram: parse init data: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrHashMissing
	}
	want, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrSignInvalid
	}
	if !hmac.Equal(sign(v.secret, dataCheckString(values)), want) {
		return nil, ErrSignInvalid
	}

	out := &InitData{QueryID: values.Get("query_id")}
	if ts, convErr := strconv.ParseInt(values.Get("auth_date"), 10, 64); convErr == nil {
		out.AuthDate = time.Unix(ts, 0)
	}
	if v.maxAge > 0 && (out.AuthDate.IsZero() || v.now().Sub(out.AuthDate) > v.maxAge) {
		return nil, ErrInitDataExpired
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, ErrUserMissing
	}
	if err := json.Unmarshal([]byte(rawUser), &out.User); err != nil {
		return nil, fmt.Errorf("telegram: decode user: %w", err)
	}
	if out.User.ID == 0 {
		return nil, ErrUserMissing
	}
	return out, nil
}

// Sign — подписывает набор полей так же, как это делает Telegram (нужно тестам и dev-клиентам).
func Sign(botToken string, values url.Values) string {
	return hex.EncodeToString(sign(secretKey(botToken), dataCheckString(values)))
}

func secretKey(botToken string) []byte {
	m := hmac.New(sha256.New, []byte("WebAppData"))
	m.Write([]byte(botToken))
	return m.Sum(nil)
}

func sign(secret []byte, data string) []byte {
	m := hmac.New(sha256.New, secret)
	m.Write([]byte(data))
	return m.Sum(nil)
}

// dataCheckString — все поля, кроме hash, "key=value" по алфавиту через \n.
func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	return strings.Join(pairs, "\n")
}
