package auth

import "sync"

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) bool

	calls struct {
		Hash []struct {
			Password string
		}
		Verify []struct {
			Hash     string
			Password string
		}
	}
	lock sync.RWMutex
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	mock.lock.Lock()
	mock.calls.Hash = append(mock.calls.Hash, struct{ Password string }{Password: password})
	mock.lock.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) Verify(hash, password string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	mock.lock.Lock()
	mock.calls.Verify = append(mock.calls.Verify, struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password})
	mock.lock.Unlock()
	return mock.VerifyFunc(hash, password)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Hash     string
	Password string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Verify
}
