package token

import (
	"errors"
	"strings"
	"testing"
)

type fakeTokenManager struct {
	token   string
	removed bool
	err     error
}

func (m *fakeTokenManager) SetToken(token string) error {
	if m.err != nil {
		return m.err
	}
	m.token = token
	return nil
}

func (m *fakeTokenManager) RemoveToken() error {
	if m.err != nil {
		return m.err
	}
	m.removed = true
	return nil
}

func TestController_Set(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		token string
		stdin string
		exp   string
		isErr bool
	}{
		{
			name:  "argument",
			token: "xxx",
			exp:   "xxx",
		},
		{
			name:  "stdin",
			stdin: "yyy\n",
			exp:   "yyy",
		},
		{
			name:  "empty",
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			tm := &fakeTokenManager{}
			ctrl := New(tm, strings.NewReader(d.stdin))
			err := ctrl.Set(d.token)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error is expected")
			}
			if tm.token != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, tm.token)
			}
		})
	}
}

func TestController_Remove(t *testing.T) {
	t.Parallel()
	tm := &fakeTokenManager{}
	ctrl := New(tm, strings.NewReader(""))
	if err := ctrl.Remove(); err != nil {
		t.Fatal(err)
	}
	if !tm.removed {
		t.Fatal("the token must be removed")
	}
	ctrl = New(&fakeTokenManager{err: errors.New("keyring error")}, strings.NewReader(""))
	if err := ctrl.Remove(); err == nil {
		t.Fatal("error is expected")
	}
}
