package services

import (
	"context"
	"sync"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/common"
	"github.com/Hari20032005/assignment-nudge/internal/logging"
)

const codeLength = 6

// CodeSender delivers a confirmation code to the user. The default
// implementation just logs it; a real mail transport can be plugged in
// without touching the auth flow.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

// LogSender prints the code through the logger. Good enough for a local,
// single-machine install where there is no outbound mail.
type LogSender struct {
	Log logging.Logger
}

func (s *LogSender) Send(ctx context.Context, email, code string) error {
	s.Log.Info(ctx, "confirmation code issued", "email", email, "code", code)
	return nil
}

type issuedCode struct {
	code    string
	expires time.Time
}

// CodeStore issues and verifies short-lived numeric confirmation codes,
// keyed by email. Codes are single-use: a successful Verify consumes the
// code. Reissuing replaces any previous code for the same email.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]issuedCode
	ttl   time.Duration

	now func() time.Time // replaced in tests
}

func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		codes: make(map[string]issuedCode),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Issue generates a fresh code for email and returns it.
func (s *CodeStore) Issue(email string) (string, error) {
	code, err := common.MakeConfirmationCode(codeLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = issuedCode{code: code, expires: s.now().Add(s.ttl)}
	return code, nil
}

// Verify checks the code for email and consumes it on success. Expired,
// mismatched, and never-issued codes all fail the same way.
func (s *CodeStore) Verify(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.codes[email]
	if !ok {
		return false
	}
	if s.now().After(issued.expires) {
		delete(s.codes, email)
		return false
	}
	if issued.code != code {
		return false
	}
	delete(s.codes, email)
	return true
}
