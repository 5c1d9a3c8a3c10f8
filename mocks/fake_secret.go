//+build !release

package mocks

import (
	"errors"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
)

type fakeSecret struct {
	sync.Mutex
	data map[string]string
	isRO bool
}

func (f *fakeSecret) Get(name string) (string, error) {
	f.Lock()
	defer f.Unlock()

	if nil == f.data {
		return "", errors.New("not found")
	}

	k, ok := f.data[name]
	if !ok {
		return "", errors.New("not found")
	}

	return k, nil
}

func (f *fakeSecret) Set(name string, value string) error {
	f.Lock()
	defer f.Unlock()

	if f.isRO {
		return errors.New("error")
	}

	if nil == f.data {
		f.data = make(map[string]string)
	}

	f.data[name] = value

	return nil
}

func (f *fakeSecret) UpdateLogger(common.ILoggerProvider) {
}

// FakeNewSecretStore creates a fake secret store.
func FakeNewSecretStore(data map[string]string, readOnly bool) *fakeSecret {
	return &fakeSecret{
		data: data,
		isRO: readOnly,
	}
}
