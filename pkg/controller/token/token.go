// Package token stores and removes the GitHub Access token in the OS
// keyring.
package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type TokenManager interface {
	SetToken(token string) error
	RemoveToken() error
}

type Controller struct {
	tokenManager TokenManager
	stdin        io.Reader
}

func New(tokenManager TokenManager, stdin io.Reader) *Controller {
	return &Controller{
		tokenManager: tokenManager,
		stdin:        stdin,
	}
}

// Set stores the token. If token is empty, it is read from stdin.
func (c *Controller) Set(token string) error {
	if token == "" {
		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read a GitHub Access token from stdin: %w", err)
			}
			return errors.New("a GitHub Access token is required")
		}
		token = strings.TrimSpace(scanner.Text())
	}
	if token == "" {
		return errors.New("a GitHub Access token is required")
	}
	if err := c.tokenManager.SetToken(token); err != nil {
		return fmt.Errorf("set a GitHub Access token in keyring: %w", err)
	}
	return nil
}

func (c *Controller) Remove() error {
	if err := c.tokenManager.RemoveToken(); err != nil {
		return fmt.Errorf("remove a GitHub Access token from keyring: %w", err)
	}
	return nil
}
